package model

// Problem is a PRB segment's worth of diagnosis/problem-list data, carried
// by the PPR^ZD1 message.
//
// Grounded on objects/problem.py::Problem.
type Problem struct {
	ActionCode            string
	DxCode                string
	DxCodeSystem           string
	ICD10Code             string
	DiagnosisType         string
	Provisional           string
	OrderType             string
	OrderControl          string
	RequesterOrderNumber  string
	FillerOrderNumber     string
	DateOfDiagnosis       string
	TimeOfOnset           string
	ExpectedTimeSolved    string
}

// NewProblem validates and constructs a Problem.
func NewProblem(
	actionCode, dxCode, dxCodeSystem, icd10Code, diagnosisType, provisional string,
	orderType, orderControl, requesterOrderNumber, fillerOrderNumber string,
	dateOfDiagnosis, timeOfOnset, expectedTimeSolved string,
) (*Problem, error) {
	if err := requireInTable("ActionCode", actionCode, ActionCode); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("ActionCode", actionCode); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("DxCode", dxCode); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("DxCodeSystem", dxCodeSystem); err != nil {
		return nil, err
	}
	if err := requireMaxLen("ICD10Code", icd10Code, 10); err != nil {
		return nil, err
	}
	if err := requireInTable("DiagnosisType", diagnosisType, DiagnosisType); err != nil {
		return nil, err
	}
	if provisional != "" && provisional != "1" {
		return nil, newFieldErr("Provisional", `must be "1" or empty, got %q`, provisional)
	}
	if orderType != "I" && orderType != "O" {
		return nil, newFieldErr("OrderType", `must be "I" or "O", got %q`, orderType)
	}
	if err := requireInTable("OrderControl", orderControl, OrderControl); err != nil {
		return nil, err
	}
	if err := requireDigitsMaxLen("RequesterOrderNumber", requesterOrderNumber, 15); err != nil {
		return nil, err
	}
	requesterOrderNumber = ZeroPad15(requesterOrderNumber)
	if fillerOrderNumber != "" {
		if err := requireDigitsMaxLen("FillerOrderNumber", fillerOrderNumber, 16); err != nil {
			return nil, err
		}
		fillerOrderNumber = ZeroPad15(fillerOrderNumber)
	}
	return &Problem{
		ActionCode:           actionCode,
		DxCode:               dxCode,
		DxCodeSystem:         dxCodeSystem,
		ICD10Code:            icd10Code,
		DiagnosisType:        diagnosisType,
		Provisional:          provisional,
		OrderType:            orderType,
		OrderControl:         orderControl,
		RequesterOrderNumber: requesterOrderNumber,
		FillerOrderNumber:    fillerOrderNumber,
		DateOfDiagnosis:      dateOfDiagnosis,
		TimeOfOnset:          timeOfOnset,
		ExpectedTimeSolved:   expectedTimeSolved,
	}, nil
}
