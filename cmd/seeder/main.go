package main

import (
	"context"
	"encoding/json"
	"flag"
	"iter"
	"log/slog"
	"os"

	"github.com/clinref/symptomsearch"
	"github.com/clinref/symptomsearch/core"
)

var knowledgeBase = []*core.SymptomEntry{
	{
		Symptom:              "chest pain",
		MedicalTerms:         []string{"angina pectoris", "retrosternal pain"},
		CommonTerms:          []string{"chest tightness", "pressure in chest"},
		Codes:                []string{"R07.9", "R07.89"},
		AssociatedConditions: []string{"acs", "pe", "gerd", "pneumonia", "costochondritis"},
		AssociatedTools:      []string{"heart-score", "timi", "wells-pe"},
		Urgency:              core.UrgencyEmergency,
		Description:          "Pain or discomfort anywhere in the anterior chest.",
		RedFlags:             []string{"radiation to jaw or left arm", "diaphoresis", "exertional onset", "tearing quality"},
		Differentials:        []string{"acute coronary syndrome", "pulmonary embolism", "aortic dissection", "pneumothorax", "gerd"},
		PhysicalExamFindings: []string{"chest wall tenderness", "new murmur", "unequal blood pressures"},
		DiagnosticTests:      []string{"ecg", "troponin", "chest x-ray", "d-dimer"},
	},
	{
		Symptom:              "shortness of breath",
		MedicalTerms:         []string{"dyspnea", "dyspnoea"},
		CommonTerms:          []string{"breathless", "can't catch my breath"},
		Codes:                []string{"R06.02"},
		AssociatedConditions: []string{"asthma", "copd", "chf", "pe", "pneumonia"},
		AssociatedTools:      []string{"wells-pe", "curb-65"},
		Urgency:              core.UrgencyHigh,
		Description:          "Subjective difficulty or distress in breathing.",
		RedFlags:             []string{"cyanosis", "stridor", "speaking in single words"},
		Differentials:        []string{"asthma exacerbation", "heart failure", "pulmonary embolism", "pneumonia"},
		PhysicalExamFindings: []string{"wheeze", "crackles", "accessory muscle use"},
		DiagnosticTests:      []string{"pulse oximetry", "chest x-ray", "bnp", "arterial blood gas"},
	},
	{
		Symptom:              "headache",
		MedicalTerms:         []string{"cephalalgia"},
		CommonTerms:          []string{"head pain", "pounding head"},
		Codes:                []string{"R51.9"},
		AssociatedConditions: []string{"migraine", "tension-headache", "sah", "meningitis"},
		AssociatedTools:      []string{"ottawa-sah"},
		Urgency:              core.UrgencyMedium,
		Description:          "Pain located anywhere in the head or upper neck.",
		RedFlags:             []string{"thunderclap onset", "fever with neck stiffness", "new focal deficit"},
		Differentials:        []string{"migraine", "tension headache", "subarachnoid hemorrhage", "meningitis"},
		PhysicalExamFindings: []string{"nuchal rigidity", "papilledema"},
		DiagnosticTests:      []string{"ct head", "lumbar puncture"},
	},
	{
		Symptom:              "fever",
		MedicalTerms:         []string{"pyrexia", "hyperthermia"},
		CommonTerms:          []string{"high temperature", "burning up"},
		Codes:                []string{"R50.9"},
		AssociatedConditions: []string{"sepsis", "pneumonia", "uti", "influenza"},
		AssociatedTools:      []string{"qsofa", "curb-65"},
		Urgency:              core.UrgencyMedium,
		Description:          "Elevated body temperature above the normal diurnal range.",
		RedFlags:             []string{"hypotension", "altered mental status", "petechial rash"},
		Differentials:        []string{"sepsis", "viral infection", "urinary tract infection"},
		PhysicalExamFindings: []string{"tachycardia", "rigors"},
		DiagnosticTests:      []string{"blood cultures", "urinalysis", "chest x-ray"},
	},
	{
		Symptom:              "abdominal pain",
		MedicalTerms:         []string{"acute abdomen"},
		CommonTerms:          []string{"stomach ache", "belly pain", "tummy pain"},
		Codes:                []string{"R10.9", "R10.84"},
		AssociatedConditions: []string{"appendicitis", "cholecystitis", "pancreatitis", "aaa"},
		AssociatedTools:      []string{"alvarado"},
		Urgency:              core.UrgencyHigh,
		Description:          "Pain perceived anywhere between the costal margins and the groin.",
		RedFlags:             []string{"rigidity", "rebound tenderness", "pulsatile mass"},
		Differentials:        []string{"appendicitis", "cholecystitis", "pancreatitis", "ruptured aaa", "bowel obstruction"},
		PhysicalExamFindings: []string{"guarding", "murphy sign", "absent bowel sounds"},
		DiagnosticTests:      []string{"lipase", "ct abdomen", "ultrasound"},
	},
	{
		Symptom:              "syncope",
		MedicalTerms:         []string{"transient loss of consciousness"},
		CommonTerms:          []string{"fainting", "passing out", "blackout"},
		Codes:                []string{"R55"},
		AssociatedConditions: []string{"vasovagal", "arrhythmia", "aortic-stenosis", "orthostatic-hypotension"},
		AssociatedTools:      []string{"san-francisco-syncope"},
		Urgency:              core.UrgencyHigh,
		Description:          "Transient loss of consciousness from global cerebral hypoperfusion.",
		RedFlags:             []string{"syncope during exertion", "family history of sudden death", "associated chest pain"},
		Differentials:        []string{"vasovagal syncope", "cardiac arrhythmia", "orthostatic hypotension", "seizure"},
		PhysicalExamFindings: []string{"orthostatic vital signs", "systolic murmur"},
		DiagnosticTests:      []string{"ecg", "orthostatic blood pressure"},
	},
	{
		Symptom:              "palpitations",
		MedicalTerms:         []string{"cardiac dysrhythmia awareness"},
		CommonTerms:          []string{"racing heart", "heart skipping beats", "fluttering"},
		Codes:                []string{"R00.2"},
		AssociatedConditions: []string{"afib", "svt", "anxiety", "hyperthyroidism"},
		AssociatedTools:      []string{"chads2-vasc"},
		Urgency:              core.UrgencyMedium,
		Description:          "Unpleasant awareness of the heartbeat.",
		RedFlags:             []string{"associated syncope", "known structural heart disease"},
		Differentials:        []string{"atrial fibrillation", "supraventricular tachycardia", "anxiety", "thyrotoxicosis"},
		PhysicalExamFindings: []string{"irregularly irregular pulse", "thyromegaly"},
		DiagnosticTests:      []string{"ecg", "tsh", "holter monitor"},
	},
	{
		Symptom:              "cough",
		MedicalTerms:         []string{"tussis"},
		CommonTerms:          []string{"hacking", "persistent cough"},
		Codes:                []string{"R05.9"},
		AssociatedConditions: []string{"uri", "pneumonia", "asthma", "gerd"},
		AssociatedTools:      []string{"curb-65"},
		Urgency:              core.UrgencyLow,
		Description:          "Forceful expiratory maneuver against a closed glottis.",
		RedFlags:             []string{"hemoptysis", "weight loss", "night sweats"},
		Differentials:        []string{"upper respiratory infection", "pneumonia", "asthma", "post-nasal drip"},
		PhysicalExamFindings: []string{"bronchial breath sounds", "wheeze"},
		DiagnosticTests:      []string{"chest x-ray"},
	},
	{
		Symptom:              "dizziness",
		MedicalTerms:         []string{"vertigo", "presyncope"},
		CommonTerms:          []string{"lightheaded", "room spinning", "woozy"},
		Codes:                []string{"R42"},
		AssociatedConditions: []string{"bppv", "vestibular-neuritis", "stroke", "orthostatic-hypotension"},
		AssociatedTools:      []string{"hints-exam", "dix-hallpike"},
		Urgency:              core.UrgencyMedium,
		Description:          "Sensation of impaired spatial orientation or impending faint.",
		RedFlags:             []string{"sudden onset with ataxia", "diplopia", "dysarthria"},
		Differentials:        []string{"benign paroxysmal positional vertigo", "vestibular neuritis", "posterior stroke"},
		PhysicalExamFindings: []string{"nystagmus", "positive dix-hallpike"},
		DiagnosticTests:      []string{"hints exam", "mri brain"},
	},
	{
		Symptom:              "low back pain",
		MedicalTerms:         []string{"lumbago", "lumbar strain"},
		CommonTerms:          []string{"backache", "sore back"},
		Codes:                []string{"M54.50"},
		AssociatedConditions: []string{"musculoskeletal-strain", "disc-herniation", "cauda-equina"},
		Urgency:              core.UrgencyLow,
		Description:          "Pain localized below the costal margin and above the gluteal folds.",
		RedFlags:             []string{"saddle anesthesia", "urinary retention", "progressive leg weakness"},
		Differentials:        []string{"muscular strain", "disc herniation", "cauda equina syndrome", "vertebral fracture"},
		PhysicalExamFindings: []string{"paraspinal tenderness", "positive straight leg raise"},
		DiagnosticTests:      []string{"mri spine"},
	},
	{
		Symptom:              "nausea and vomiting",
		MedicalTerms:         []string{"emesis"},
		CommonTerms:          []string{"throwing up", "sick to my stomach", "queasy"},
		Codes:                []string{"R11.2"},
		AssociatedConditions: []string{"gastroenteritis", "bowel-obstruction", "dka", "pregnancy"},
		Urgency:              core.UrgencyLow,
		Description:          "Urge to vomit with or without expulsion of gastric contents.",
		RedFlags:             []string{"bilious vomiting", "hematemesis", "severe dehydration"},
		Differentials:        []string{"gastroenteritis", "bowel obstruction", "diabetic ketoacidosis"},
		PhysicalExamFindings: []string{"dry mucous membranes", "distended abdomen"},
		DiagnosticTests:      []string{"basic metabolic panel", "abdominal x-ray"},
	},
	{
		Symptom:              "altered mental status",
		MedicalTerms:         []string{"encephalopathy", "delirium"},
		CommonTerms:          []string{"confusion", "not acting right"},
		Codes:                []string{"R41.82"},
		AssociatedConditions: []string{"sepsis", "hypoglycemia", "stroke", "intoxication"},
		AssociatedTools:      []string{"gcs", "cam"},
		Urgency:              core.UrgencyEmergency,
		Description:          "Acute change in cognition, attention or level of consciousness.",
		RedFlags:             []string{"focal neurological deficit", "fever", "head trauma"},
		Differentials:        []string{"sepsis", "hypoglycemia", "stroke", "drug toxicity", "hepatic encephalopathy"},
		PhysicalExamFindings: []string{"asterixis", "pinpoint pupils"},
		DiagnosticTests:      []string{"glucose", "ct head", "toxicology screen"},
	},
	{
		Symptom:              "leg swelling",
		MedicalTerms:         []string{"peripheral edema"},
		CommonTerms:          []string{"swollen ankles", "puffy legs"},
		Codes:                []string{"R60.0"},
		AssociatedConditions: []string{"dvt", "chf", "venous-insufficiency", "cellulitis"},
		AssociatedTools:      []string{"wells-dvt"},
		Urgency:              core.UrgencyMedium,
		Description:          "Accumulation of interstitial fluid in the lower extremities.",
		RedFlags:             []string{"unilateral swelling with calf tenderness", "associated dyspnea"},
		Differentials:        []string{"deep vein thrombosis", "heart failure", "venous insufficiency", "cellulitis"},
		PhysicalExamFindings: []string{"pitting edema", "calf tenderness", "erythema"},
		DiagnosticTests:      []string{"duplex ultrasound", "d-dimer", "bnp"},
	},
	{
		Symptom:              "sore throat",
		MedicalTerms:         []string{"pharyngitis", "odynophagia"},
		CommonTerms:          []string{"throat pain", "scratchy throat"},
		Codes:                []string{"J02.9"},
		AssociatedConditions: []string{"viral-pharyngitis", "strep-throat", "peritonsillar-abscess"},
		AssociatedTools:      []string{"centor"},
		Urgency:              core.UrgencyLow,
		Description:          "Pain or irritation of the pharynx, worse with swallowing.",
		RedFlags:             []string{"drooling", "trismus", "muffled voice"},
		Differentials:        []string{"viral pharyngitis", "streptococcal pharyngitis", "peritonsillar abscess", "epiglottitis"},
		PhysicalExamFindings: []string{"tonsillar exudate", "uvular deviation"},
		DiagnosticTests:      []string{"rapid strep test"},
	},
	{
		Symptom:              "rash",
		MedicalTerms:         []string{"exanthem", "dermatitis"},
		CommonTerms:          []string{"skin breakout", "hives"},
		Codes:                []string{"R21"},
		AssociatedConditions: []string{"urticaria", "contact-dermatitis", "meningococcemia", "drug-reaction"},
		Urgency:              core.UrgencyLow,
		Description:          "Visible change in skin color or texture.",
		RedFlags:             []string{"non-blanching petechiae", "mucosal involvement", "skin sloughing"},
		Differentials:        []string{"urticaria", "contact dermatitis", "drug eruption", "meningococcemia"},
		PhysicalExamFindings: []string{"blanching on pressure", "target lesions"},
		DiagnosticTests:      []string{"skin examination", "complete blood count"},
	},
}

var (
	dbPath       = flag.String("db", "./symptom_db", "database directory")
	seedFileName = flag.String("src", "", "JSON file of symptom entries")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

// entriesFromFile decodes a JSON array of symptom entries.
func entriesFromFile(filename string) ([]*core.SymptomEntry, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []*core.SymptomEntry
	if err := json.NewDecoder(f).Decode(&entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// entryBatches yields entries in batches of batchSize.
func entryBatches(entries []*core.SymptomEntry, batchSize int) iter.Seq[[]*core.SymptomEntry] {
	return func(yield func([]*core.SymptomEntry) bool) {
		for start := 0; start < len(entries); start += batchSize {
			end := start + batchSize
			if end > len(entries) {
				end = len(entries)
			}
			if !yield(entries[start:end]) {
				return
			}
		}
	}
}

func main() {
	db, err := symptomsearch.NewDatabase(*dbPath)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	loader, err := db.NewLoadingPipeline()
	if err != nil {
		panic(err)
	}
	defer loader.Release()

	ctx := context.Background()

	// Determine source of seed data
	entries := knowledgeBase
	if seedFileName != nil && *seedFileName != "" {
		entries, err = entriesFromFile(*seedFileName)
		if err != nil {
			panic(err)
		}
	}

	// Load in batches of 5
	loaded := 0
	for batch := range entryBatches(entries, 5) {
		added, err := loader.Load(ctx, batch)
		if err != nil {
			panic(err)
		}
		loaded += len(added)
	}

	slog.Info("seeded knowledge base", "entries", loaded, "db", *dbPath)
}
