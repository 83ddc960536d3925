package clinical

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/lambdabypi/atlas-eval/pkg/types"
)

type scenarioTemplate struct {
	age      string
	symptoms string
	expected string
}

var scenarioTemplates = map[types.ClinicalCategory][]scenarioTemplate{
	types.CategoryWHOIMCI: {
		{"2 years", "fever, cough, fast breathing", "pneumonia_protocol"},
		{"8 months", "diarrhea, dehydration signs", "diarrhea_management"},
		{"18 months", "fever, lethargy, poor feeding", "serious_infection"},
	},
	types.CategoryMaternalHealth: {
		{"28 years, 36 weeks gestation", "severe headache, BP 160/110", "preeclampsia_management"},
		{"22 years, 20 weeks gestation", "bleeding, cramping", "threatened_abortion"},
		{"35 years, 28 weeks gestation", "decreased fetal movement", "fetal_monitoring"},
	},
	types.CategoryGeneralMedicine: {
		{"45 years", "chest pain, shortness of breath", "cardiac_evaluation"},
		{"60 years", "chronic cough, weight loss", "TB_screening"},
		{"35 years", "polyuria, polydipsia, weight loss", "diabetes_screening"},
	},
	types.CategoryEmergency: {
		{"25 years", "unconscious, fever, neck stiffness", "meningitis_protocol"},
		{"55 years", "severe chest pain, sweating", "MI_protocol"},
		{"30 years", "severe abdominal pain, guarding", "acute_abdomen"},
	},
}

// GenerateScenarios builds countPerCategory synthetic scenarios for every
// clinical category by cycling the fixed templates. Resource levels are drawn
// from the seeded source so batches are reproducible.
func GenerateScenarios(countPerCategory int, seed int64) []types.Scenario {
	rng := rand.New(rand.NewSource(seed))
	levels := types.ResourceLevels()
	now := time.Now().UTC().Format(time.RFC3339)

	out := make([]types.Scenario, 0, countPerCategory*len(types.ClinicalCategories()))
	for _, category := range types.ClinicalCategories() {
		templates := scenarioTemplates[category]
		for i := 0; i < countPerCategory; i++ {
			tpl := templates[i%len(templates)]
			out = append(out, types.Scenario{
				ID:               uuid.NewString(),
				Category:         category,
				PatientAge:       tpl.age,
				Symptoms:         tpl.symptoms,
				ExpectedProtocol: tpl.expected,
				ResourceLevel:    levels[rng.Intn(len(levels))],
				CreatedAt:        now,
			})
		}
	}
	return out
}
