package application

import "propdesk/model"

// ScreeningSteps lists the checklist in display order.
var ScreeningSteps = []string{"identity", "credit", "background", "income", "references"}

// Steps reports each screening step's completion in ScreeningSteps order.
func Steps(a model.RentalApplication) []bool {
	return []bool{
		a.IdentityVerified,
		a.CreditChecked,
		a.BackgroundChecked,
		a.IncomeVerified,
		a.ReferencesChecked,
	}
}

// Progress is the share of completed steps as a whole percentage, rounded
// down. No steps means 0.
func Progress(steps []bool) int {
	if len(steps) == 0 {
		return 0
	}
	done := 0
	for _, s := range steps {
		if s {
			done++
		}
	}
	return done * 100 / len(steps)
}

func ScreeningProgress(a model.RentalApplication) int {
	return Progress(Steps(a))
}

// View is the application as the screen shows it.
type View struct {
	model.RentalApplication
	ScreeningProgress int `json:"screeningProgress"`
}

func toView(a model.RentalApplication) View {
	return View{RentalApplication: a, ScreeningProgress: ScreeningProgress(a)}
}
