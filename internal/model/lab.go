package model

// LabResult is one OBX segment's worth of a specimen's test result.
//
// Grounded on objects/lab_specimen.py::LabResult.
type LabResult struct {
	ValueType       string
	ObservationCode string
	ObservationCodeSystem string
	Value           string
	Unit            string
	Status          string
}

// NewLabResult validates and constructs a LabResult.
func NewLabResult(valueType, observationCode, observationCodeSystem, value, unit, status string) (*LabResult, error) {
	if err := requireInTable("ValueType", valueType, ValueType); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("ValueType", valueType); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("ObservationCode", observationCode); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("ObservationCodeSystem", observationCodeSystem); err != nil {
		return nil, err
	}
	if err := requireInTable("Status", status, ResultStatus); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("Status", status); err != nil {
		return nil, err
	}
	return &LabResult{
		ValueType:             valueType,
		ObservationCode:       observationCode,
		ObservationCodeSystem: observationCodeSystem,
		Value:                 value,
		Unit:                  unit,
		Status:                status,
	}, nil
}

// LabResultSpecimen is one SPM/OBR group carrying one or more LabResults,
// for the OML^O33 laboratory message.
//
// Grounded on objects/lab_specimen.py::LabResultSpecimen.
type LabResultSpecimen struct {
	SpecimenID         string
	SpecimenCode       string
	SpecimenName       string
	SpecimenCodeSystem string
	TestTypeCode       string
	TestTypeName       string
	OrderStatus        string
	OrderControl       string
	SampledTime        string
	ReportedTime       string
	OrderEffectiveTime string
	Results            []*LabResult
}

// NewLabResultSpecimen validates and constructs a LabResultSpecimen.
func NewLabResultSpecimen(
	specimenID, specimenCode, specimenName, specimenCodeSystem string,
	testTypeCode, testTypeName, orderStatus, orderControl string,
	sampledTime, reportedTime, orderEffectiveTime string,
	results []*LabResult,
) (*LabResultSpecimen, error) {
	if err := requireNonEmpty("SpecimenID", specimenID); err != nil {
		return nil, err
	}
	if err := requireMaxLen("SpecimenID", specimenID, 80); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("SpecimenCode", specimenCode); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("SpecimenName", specimenName); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("SpecimenCodeSystem", specimenCodeSystem); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("TestTypeCode", testTypeCode); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("TestTypeName", testTypeName); err != nil {
		return nil, err
	}
	if err := requireInTable("OrderStatus", orderStatus, OrderStatus); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("OrderStatus", orderStatus); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, newFieldErr("Results", "at least one result is required")
	}
	return &LabResultSpecimen{
		SpecimenID:         specimenID,
		SpecimenCode:       specimenCode,
		SpecimenName:       specimenName,
		SpecimenCodeSystem: specimenCodeSystem,
		TestTypeCode:       testTypeCode,
		TestTypeName:       testTypeName,
		OrderStatus:        orderStatus,
		OrderControl:       orderControl,
		SampledTime:        sampledTime,
		ReportedTime:       reportedTime,
		OrderEffectiveTime: orderEffectiveTime,
		Results:            results,
	}, nil
}

// DefaultLabSpecimenName and DefaultLabSpecimenCodeSystem are the fallback
// values used when a specimen can't be matched to a known JLAC10 specimen
// entry, matching the original's "不明な検体"/"99XYZ" defaults.
const (
	DefaultLabSpecimenName       = "不明な検体"
	DefaultLabSpecimenCodeSystem = "99XYZ"
	DefaultLabTestTypeCode       = "8"
	DefaultLabTestTypeName       = "その他の検体検査"
)
