package model

// The five levers are a fixed closed set. Any datum referencing a lever
// outside this set is ignored by lever-keyed aggregation.
const (
	LeverPipelineDiscipline = "Pipeline Discipline"
	LeverDealExecution      = "Deal Execution"
	LeverValueCoCreation    = "Value Co-Creation"
	LeverCapabilityUptake   = "Capability Uptake"
	LeverDataHygiene        = "Data Hygiene"
)

// Levers lists the levers in display order (radar chart order).
var Levers = []string{
	LeverPipelineDiscipline,
	LeverDealExecution,
	LeverValueCoCreation,
	LeverCapabilityUptake,
	LeverDataHygiene,
}

// IsLever reports whether name belongs to the closed lever set.
func IsLever(name string) bool {
	for _, l := range Levers {
		if l == name {
			return true
		}
	}
	return false
}

// Person is an immutable HRIS record for the reporting period.
type Person struct {
	PersonID    string `json:"person_id"`
	Name        string `json:"name"`
	Geo         string `json:"geo"`
	ManagerName string `json:"manager_name"`
	RoleType    string `json:"role_type"`
}
