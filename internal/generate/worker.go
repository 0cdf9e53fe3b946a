package generate

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/gyeh/ssmixtwins/internal/hl7"
	"github.com/gyeh/ssmixtwins/internal/message"
	"github.com/gyeh/ssmixtwins/internal/model"
	"github.com/gyeh/ssmixtwins/internal/normalize"
	"github.com/gyeh/ssmixtwins/internal/segment"
	"github.com/gyeh/ssmixtwins/internal/source"
	"github.com/gyeh/ssmixtwins/internal/storage"
	"github.com/gyeh/ssmixtwins/internal/synth"
)

// noOrderNumber is the 15-zero placeholder filenames use for the
// requester-order-number component when the written message carries no
// order at all (every ADT message).
const noOrderNumber = "000000000000000"

// defaultDepartmentCode is the department bucket used for a message that
// carries no admission or physician context to derive one from.
const defaultDepartmentCode = "99"

// startAgeDaysPerYear is the fractional day count parse_table's DOB
// derivation uses, matching Python's timedelta(days=start_age*365.25).
const startAgeDaysPerYear = 365.25

// PatientResult summarizes one patient file's processing outcome.
type PatientResult struct {
	PatientID       string
	SourceFile      string
	SourceHash      string
	MessagesWritten int
	FilesWritten    []string
}

// frequencyCodes is a small local catalog of dosing-frequency strings TQ1-8
// draws from; no frequency code table exists anywhere in the retrieved
// example pack, so this is a plain literal set grounded on common JAHIS
// usage rather than a named catalog.
var frequencyCodes = []string{"QD", "BID", "TID", "QID", "PRN"}

// specimenNames maps a handful of common JLAC10 specimen-type digits to a
// display name; any code outside this small set falls back to
// model.DefaultLabSpecimenName, matching the original's own "unknown
// specimen" fallback for the vast majority of the real JLAC10 catalog this
// module does not carry.
var specimenNames = map[string]string{
	"001": "血清",
	"013": "尿",
	"043": "髄液",
	"021": "全血",
}

// patientWorker builds and writes every message for one patient's source
// rows, holding the per-worker synthesizer stream and the run-shared,
// read-only hospital/physician roster.
type patientWorker struct {
	hospital     *model.Hospital
	roster       []*model.Physician
	messageTypes map[string]bool
	characterSet hl7.CharacterSet
	writer       *storage.Writer

	gen     *synth.Generator
	control *message.ControlIDGenerator
	orderSeq *orderNumberSeq

	patient   *model.Patient
	primary   *model.Physician
	admission *model.Admission
	admitTime string
	visitCount int
	msgSeq    int

	result *PatientResult
}

// ProcessPatientFile reads, sorts, and synthesizes every message for one
// patient's source CSV, writing each to its bucketed location, and returns
// a summary of what was written.
//
// patientIndex must be the patient's stable position in the sorted list
// source.ListPatientFiles returns, never a runtime worker-pool slot
// number: every synthesized value — the patient's own attributes, the
// order-number sequence, the message control IDs — is keyed off this index
// so a run's output never depends on how many workers processed it
// (spec §5, §8).
func ProcessPatientFile(
	ctx context.Context,
	path string,
	patientIndex int,
	seed int64,
	hospital *model.Hospital,
	roster []*model.Physician,
	messageTypes map[string]bool,
	characterSet hl7.CharacterSet,
	writer *storage.Writer,
) (*PatientResult, error) {
	name := filepathBase(path)
	startAge, sex, err := source.ParseFileName(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	rows, err := source.LoadRows(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	events, err := BuildEvents(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	sourceHash, err := normalize.FileHash(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if len(events) == 0 {
		return &PatientResult{SourceFile: name, SourceHash: sourceHash}, nil
	}

	patientID := fmt.Sprintf("%010d", patientIndex+1)
	w := &patientWorker{
		hospital:     hospital,
		roster:       roster,
		messageTypes: messageTypes,
		characterSet: characterSet,
		writer:       writer,
		gen:          synth.NewGenerator(seed, patientIndex),
		control:      message.NewControlIDGenerator(seed, patientIndex),
		orderSeq:     newOrderNumberSeq(patientID),
		result:       &PatientResult{PatientID: patientID, SourceFile: name, SourceHash: sourceHash},
	}

	if err := w.buildPatient(patientID, sex, startAge, events); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	w.primary = w.roster[w.gen.IntN(len(w.roster))]

	for _, event := range events {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := w.processEvent(event); err != nil {
			return nil, fmt.Errorf("%s: event at %s: %w", name, event.At.Format(time.RFC3339), err)
		}
	}

	last := events[len(events)-1]
	if err := w.writeClosingSnapshot(last.At); err != nil {
		return nil, fmt.Errorf("%s: closing snapshot: %w", name, err)
	}

	return w.result, nil
}

// filepathBase avoids importing path/filepath solely for Base; kept local
// since this is the package's only use of it.
func filepathBase(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[i+1:]
		}
	}
	return path
}

// buildPatient derives DOB from the row timestamps (oldest minus the
// file's starting age, newest for current-age-dependent draws) and
// constructs the Patient entity with every synthesized demographic
// attribute.
//
// Grounded on preprocess_main.py::parse_table's DOB derivation:
// dob = (oldest_date - timedelta(days=start_age*365.25)).date().
func (w *patientWorker) buildPatient(patientID, sex string, startAge int, events []Event) error {
	oldest, newest := oldestAndNewest(events)
	dobDays := int(math.Round(float64(startAge) * startAgeDaysPerYear))
	dob := oldest.AddDate(0, 0, -dobDays)
	ageAtLatest := int(float64(newest.Sub(dob).Hours()) / 24 / startAgeDaysPerYear)

	lastName, firstName, lastNameKana, firstNameKana := w.gen.RandomPersonName()
	postalCode, address := w.gen.RandomAddress()
	homePhone := w.gen.RandomPhone("03")
	workPhone := ""
	if w.gen.RandomWorkStatus(ageAtLatest) {
		workPhone = w.gen.RandomPhone("03")
	}

	var allergies []*model.Allergy
	for i, n := 0, w.gen.RandomAllergyCount(); i < n; i++ {
		entry := w.gen.RandomAllergy()
		a, err := model.NewAllergy(entry.AllergyTypeCode, entry.AllergenCode, entry.AllergenName, entry.AllergenCodeSystem)
		if err != nil {
			return fmt.Errorf("build allergy: %w", err)
		}
		allergies = append(allergies, a)
	}

	insurance, err := w.gen.RandomInsurance()
	if err != nil {
		return fmt.Errorf("build insurance: %w", err)
	}

	deathIndicator, deathDateTime := w.deathStatus(events)

	p, err := model.NewPatient(
		patientID, sex, lastName, firstName, lastNameKana, firstNameKana, normalize.FormatHL7Date(dob),
		deathIndicator, deathDateTime,
		postalCode, address, homePhone, workPhone,
		w.gen.RandomABOBloodType(), w.gen.RandomRhBloodType(),
		w.gen.RandomHeightCM(), w.gen.RandomWeightKG(),
		allergies, []*model.Insurance{insurance},
	)
	if err != nil {
		return fmt.Errorf("build patient: %w", err)
	}
	w.patient = p
	return nil
}

// deathStatus reports whether the patient's last discharge carried the
// "death" disposition code ("04"), in which case PID-29/PID-30 must both
// render, per the message layer's own check (internal/message.BuildADTA08).
func (w *patientWorker) deathStatus(events []Event) (indicator, dateTime string) {
	for _, e := range events {
		if e.Type != source.RecordDischarge {
			continue
		}
		for _, r := range e.Rows {
			if r.DischargeDisposition == "04" {
				indicator = "Y"
				dateTime = normalize.FormatHL7(e.At)
			}
		}
	}
	return indicator, dateTime
}

// processEvent dispatches one Event to the message-building logic for its
// record type, skipping types that have no HL7 equivalent in this profile
// (spec's ADT^A12 outpatient-visit notification is explicitly dropped —
// see DESIGN.md) or whose row carries no rows at all.
func (w *patientWorker) processEvent(e Event) error {
	switch e.Type {
	case source.RecordAdmission:
		return w.admit(e)
	case source.RecordDischarge:
		return w.discharge(e)
	case source.RecordDiagnosis:
		return w.diagnoses(e)
	case source.RecordPrescription:
		return w.prescriptions(e)
	case source.RecordInjection:
		return w.injections(e)
	case source.RecordLabResult:
		return w.labResults(e)
	default:
		return nil
	}
}

func (w *patientWorker) admitted() bool { return w.admission != nil }

func (w *patientWorker) patientClass() string {
	if w.admitted() {
		return "I"
	}
	return "O"
}

func (w *patientWorker) departmentCode() string {
	if w.admitted() {
		return w.admission.DepartmentCode
	}
	return defaultDepartmentCode
}

// admit builds and writes an ADT^A01 admit notification, opening a new
// Admission and, with 50% probability, reassigning the patient's primary
// physician to the admitting physician — matching parse_table's type-0
// branch.
func (w *patientWorker) admit(e Event) error {
	row := e.Rows[len(e.Rows)-1]
	phys := w.roster[w.gen.IntN(len(w.roster))]
	admission, err := model.NewAdmission(phys, w.gen.RandomWard(), w.gen.RandomRoom(), w.gen.RandomBed())
	if err != nil {
		return fmt.Errorf("build admission: %w", err)
	}
	if w.gen.Chance(0.5) {
		w.primary = phys
	}
	w.admission = admission
	w.visitCount++
	w.admitTime = normalize.FormatHL7(e.At)

	if !w.messageTypes[message.MessageTypeADTA01] {
		return nil
	}
	pv1 := segment.PV1Params{
		PatientClass:  "I",
		VisitNumber:   fmt.Sprintf("%05d", w.visitCount),
		AdmitDateTime: w.admitTime,
	}
	msg, err := message.BuildADTA01(w.hospital, w.patient, w.admission, message.ADTA01Params{
		PV1:         pv1,
		AdmitReason: source.Name(row.Text),
	}, w.stampAt(e.At))
	if err != nil {
		return err
	}
	return w.writeADT(msg, e.At, message.MessageTypeADTA01)
}

// discharge builds and writes an ADT^A03 discharge notification, then
// clears the current admission — the order the original's type-1 branch
// keeps: the message is built from the still-open admission, and only
// afterward does admission become nil.
func (w *patientWorker) discharge(e Event) error {
	if !w.admitted() {
		return nil
	}
	row := e.Rows[len(e.Rows)-1]
	pv1 := segment.PV1Params{
		PatientClass:         "I",
		VisitNumber:          fmt.Sprintf("%05d", w.visitCount),
		AdmitDateTime:        w.admitTime,
		DischargeDateTime:    normalize.FormatHL7(e.At),
		DischargeDisposition: row.DischargeDisposition,
	}

	var writeErr error
	if w.messageTypes[message.MessageTypeADTA03] {
		msg, err := message.BuildADTA03(w.hospital, w.patient, w.admission, pv1, w.stampAt(e.At))
		if err != nil {
			return err
		}
		writeErr = w.writeADT(msg, e.At, message.MessageTypeADTA03)
	}
	w.admission = nil
	w.admitTime = ""
	return writeErr
}

// diagnoses builds one PPR^ZD1 message per diagnosis row — a deliberate
// simplification of the original's one-message-per-event grouping of all
// of an event's problems, since message.BuildPPRZD1 takes a single Problem
// per call (DESIGN.md documents this scope decision).
func (w *patientWorker) diagnoses(e Event) error {
	if !w.messageTypes[message.MessageTypePPRZD1] {
		return nil
	}
	orderNumber := w.orderSeq.Next()
	diagnosisType := "O"
	if w.admitted() {
		diagnosisType = "H"
	}
	orderType := "O"
	if w.admitted() {
		orderType = "I"
	}

	for i, row := range e.Rows {
		requester := w.selectPhysician()
		dxCode, dxCodeSystem := source.DiagnosisCode(row.MDCDX2)
		dt := diagnosisType
		if i > 0 {
			dt = "F" // secondary diagnosis within the same event
		}
		problem, err := model.NewProblem(
			"AD", dxCode, dxCodeSystem, row.ICD10, dt, row.Provisional,
			orderType, "NW", orderNumber, orderNumber,
			normalize.FormatHL7(e.At), "", "",
		)
		if err != nil {
			return fmt.Errorf("build problem: %w", err)
		}
		msg, err := message.BuildPPRZD1(w.hospital, w.patient, problem, requester, w.stampAt(e.At))
		if err != nil {
			return err
		}
		if err := w.writeOrder(msg, e.At, storage.DataTypeProblem, orderNumber, requester.DepartmentCode); err != nil {
			return err
		}
	}
	return nil
}

// prescriptions builds one OMP^O09 message per prescription row — the same
// per-event-to-per-row simplification as diagnoses, for the same reason.
func (w *patientWorker) prescriptions(e Event) error {
	if !w.messageTypes[message.MessageTypeOMPO09] {
		return nil
	}
	orderNumber := w.orderSeq.Next()

	for i, row := range e.Rows {
		requester := w.selectPhysician()
		drugCode, drugCodeSystem := source.DrugCode(row.HOT)
		drugName := source.Name(row.Text)
		doseUnitCode, dosageFormCode, routeCode := source.ClassifyDrugName(drugName)

		minimumDose := hl7.Val(fmt.Sprintf("%d", w.gen.IntN(5)+1))
		if source.IsOintment(dosageFormCode) {
			minimumDose = hl7.LiteralEmptyQuote()
		}
		dispenseUnit := row.Unit
		if dispenseUnit == "" {
			dispenseUnit = doseUnitCode
		}
		if dispenseUnit == "" {
			dispenseUnit = "g" // ointments carry no minimum-dose unit; dispense amount still needs one
		}
		recipeNumber := fmt.Sprintf("%02d", i+1)

		order, err := model.NewPrescriptionOrder(
			drugCode, drugCodeSystem, minimumDose,
			doseUnitCode, dosageFormCode,
			fmt.Sprintf("%d", w.gen.IntN(30)+1), dispenseUnit, recipeNumber,
			routeCode, "NW",
			orderNumber, orderNumber, recipeNumber, "001",
		)
		if err != nil {
			return fmt.Errorf("build prescription order: %w", err)
		}

		ctx := message.OrderContext{
			PatientClass: w.patientClass(),
			ORC: segment.ORCParams{
				OrderControl:         "NW",
				RequesterOrderNumber: orderNumber,
				FillerOrderNumber:    orderNumber,
				OrderStatus:          "IP",
				OrderDateTime:        normalize.FormatHL7(e.At),
			},
			TQ1:       w.randomTQ1(e.At),
			Requester: requester,
		}
		msg, err := message.BuildOMPO09Prescription(w.hospital, w.patient, order, ctx, w.stampAt(e.At))
		if err != nil {
			return err
		}
		if err := w.writeOrder(msg, e.At, storage.DataTypeOrder, orderNumber, requester.DepartmentCode); err != nil {
			return err
		}
	}
	return nil
}

// injections shuffles the event's rows and splits them into 1..n
// components per chunk, one OMP^O09 injection message per chunk, matching
// parse_table's type-4 branch: when at least 3 components are present it
// iteratively carves off a random 1..(n/3)-sized slice; otherwise the
// whole event is a single chunk.
func (w *patientWorker) injections(e Event) error {
	if !w.messageTypes[message.MessageTypeOMPO09] {
		return nil
	}
	orderNumber := w.orderSeq.Next()
	requester := w.selectPhysician()

	shuffleOrder := w.gen.ShuffleIndices(len(e.Rows))
	shuffled := make([]source.Row, len(e.Rows))
	for i, j := range shuffleOrder {
		shuffled[i] = e.Rows[j]
	}

	var chunks [][]source.Row
	if len(shuffled) >= 3 {
		maxPick := len(shuffled) / 3
		if maxPick < 1 {
			maxPick = 1
		}
		rest := shuffled
		for len(rest) > 0 {
			n := w.gen.IntN(maxPick) + 1
			if n > len(rest) {
				n = len(rest)
			}
			chunks = append(chunks, rest[:n])
			rest = rest[n:]
		}
	} else {
		chunks = [][]source.Row{shuffled}
	}

	for chunkIdx, chunk := range chunks {
		components := make([]*model.InjectionComponent, 0, len(chunk))
		var firstName string
		for _, row := range chunk {
			name := source.Name(row.Text)
			if firstName == "" {
				firstName = name
			}
			code, codeSystem := source.DrugCode(row.HOT)
			_ = codeSystem
			unit := row.Unit
			if unit == "" {
				unit = "mL"
			}
			comp, err := model.NewInjectionComponent(
				source.InjectionComponentType(name), code, name,
				fmt.Sprintf("%d", w.gen.IntN(500)+1), unit,
			)
			if err != nil {
				return fmt.Errorf("build injection component: %w", err)
			}
			components = append(components, comp)
		}

		doseUnitCode, _, routeCode := source.ClassifyDrugName(firstName)
		if doseUnitCode == "" {
			doseUnitCode = "mg" // an injection's dose unit is never undefined the way an ointment's is
		}
		doseUnitName, doseUnitCodeSystem := "", ""
		if _, ok := model.DoseUnit[doseUnitCode]; !ok {
			doseUnitName = doseUnitCode
			doseUnitCodeSystem = "99XYZ"
		}
		dispenseAmount := ""
		if w.gen.Chance(0.2) {
			dispenseAmount = fmt.Sprintf("%d", w.gen.IntN(500)+1)
		}

		order, err := model.NewInjectionOrder(
			"01", hl7.Val(fmt.Sprintf("%d", w.gen.IntN(5)+1)),
			doseUnitCode, doseUnitName, doseUnitCodeSystem, dispenseAmount,
			routeCode, w.gen.RandomRouteAdminDevice(), components, "NW",
			orderNumber, orderNumber, "01", fmt.Sprintf("%03d", chunkIdx+1),
		)
		if err != nil {
			return fmt.Errorf("build injection order: %w", err)
		}

		ctx := message.OrderContext{
			PatientClass: w.patientClass(),
			ORC: segment.ORCParams{
				OrderControl:         "NW",
				RequesterOrderNumber: orderNumber,
				FillerOrderNumber:    orderNumber,
				OrderStatus:          "IP",
				OrderDateTime:        normalize.FormatHL7(e.At),
			},
			TQ1:       w.randomTQ1(e.At),
			Requester: requester,
		}
		msg, err := message.BuildOMPO09Injection(w.hospital, w.patient, order, ctx, w.stampAt(e.At))
		if err != nil {
			return err
		}
		if err := w.writeOrder(msg, e.At, storage.DataTypeOrder, orderNumber, requester.DepartmentCode); err != nil {
			return err
		}
	}
	return nil
}

// labResults groups the event's rows by specimen code and builds one
// OML^O33 message per specimen group, matching parse_table's type-5
// branch.
func (w *patientWorker) labResults(e Event) error {
	if !w.messageTypes[message.MessageTypeOMLO33] {
		return nil
	}
	orderNumber := w.orderSeq.Next()
	requester := w.selectPhysician()

	groups := make(map[string][]source.Row)
	var order []string
	for _, row := range e.Rows {
		code := source.SpecimenCode(row.JLAC10)
		if _, ok := groups[code]; !ok {
			order = append(order, code)
		}
		groups[code] = append(groups[code], row)
	}

	for _, code := range order {
		rows := groups[code]
		var results []*model.LabResult
		for _, row := range rows {
			valueType := "ST"
			if isNumeric(row.LabValue) {
				valueType = "NM"
			}
			status := "F"
			if w.gen.Chance(0.1) {
				status = "P"
			} else if w.gen.Chance(0.02) {
				status = "C"
			}
			result, err := model.NewLabResult(
				valueType, row.JLAC10, source.ObservationCodeSystem(row.JLAC10),
				row.LabValue, row.Unit, status,
			)
			if err != nil {
				return fmt.Errorf("build lab result: %w", err)
			}
			results = append(results, result)
		}

		name, ok := specimenNames[code]
		codeSystem := "JC10"
		if !ok {
			name = model.DefaultLabSpecimenName
			codeSystem = model.DefaultLabSpecimenCodeSystem
		}
		specimen, err := model.NewLabResultSpecimen(
			fmt.Sprintf("%s-%s", orderNumber, code), code, name, codeSystem,
			model.DefaultLabTestTypeCode, model.DefaultLabTestTypeName,
			"CM", "NW",
			normalize.FormatHL7(e.At), normalize.FormatHL7(e.At), normalize.FormatHL7(e.At),
			results,
		)
		if err != nil {
			return fmt.Errorf("build lab specimen: %w", err)
		}

		orc := segment.ORCParams{
			OrderControl:         "NW",
			RequesterOrderNumber: orderNumber,
			FillerOrderNumber:    orderNumber,
			OrderStatus:          "CM",
			OrderDateTime:        normalize.FormatHL7(e.At),
		}
		msg, err := message.BuildOMLO33(w.hospital, w.patient, specimen, orc, requester, w.stampAt(e.At))
		if err != nil {
			return err
		}
		if err := w.writeOrder(msg, e.At, storage.DataTypeLab, orderNumber, requester.DepartmentCode); err != nil {
			return err
		}
	}
	return nil
}

// writeClosingSnapshot emits the ADT^A08 demographic snapshot spec §9
// requires once per patient, using the final row's timestamp and whatever
// admission state remains at the end of the row loop.
func (w *patientWorker) writeClosingSnapshot(at time.Time) error {
	if !w.messageTypes[message.MessageTypeADTA08] {
		return nil
	}
	params := message.ADTA08Params{Admission: w.admission}
	if w.admitted() {
		params.PV1 = segment.PV1Params{
			PatientClass:  "I",
			VisitNumber:   fmt.Sprintf("%05d", w.visitCount),
			AdmitDateTime: w.admitTime,
		}
	}
	msg, err := message.BuildADTA08(w.hospital, w.patient, params, w.stampAt(at))
	if err != nil {
		return err
	}
	return w.writeADT(msg, at, message.MessageTypeADTA08)
}

// selectPhysician implements the original's 70/30 requester/enterer
// selection: 70% of the time the patient's primary physician places the
// order, else a weighted draw via DrawPhysician.
func (w *patientWorker) selectPhysician() *model.Physician {
	if w.gen.Chance(0.7) {
		return w.primary
	}
	var admissionPhysician *model.Physician
	if w.admitted() {
		admissionPhysician = w.admission.Physician
	}
	return w.gen.DrawPhysician(w.primary, w.roster, admissionPhysician)
}

func (w *patientWorker) randomTQ1(at time.Time) segment.TQ1Params {
	return segment.TQ1Params{
		FrequencyCode: frequencyCodes[w.gen.IntN(len(frequencyCodes))],
		StartDateTime: normalize.FormatHL7(at),
	}
}

func (w *patientWorker) stampAt(at time.Time) message.Stamp {
	return message.Stamp{ControlID: w.control.Next(), MessageTime: normalize.FormatHL7(at), CharacterSet: w.characterSet}
}

// writeADT writes an ADT-family message (no order number) to its bucketed
// location.
func (w *patientWorker) writeADT(msg *hl7.Message, at time.Time, messageType string) error {
	return w.write(msg, at, storage.DataTypeADT, noOrderNumber, w.departmentCode())
}

// writeOrder writes an order/lab/problem message, whose filename carries
// the shared requester order number the event was built under.
func (w *patientWorker) writeOrder(msg *hl7.Message, at time.Time, dataType storage.DataType, orderNumber, departmentCode string) error {
	return w.write(msg, at, dataType, model.ZeroPad15(orderNumber), departmentCode)
}

func (w *patientWorker) write(msg *hl7.Message, at time.Time, dataType storage.DataType, requesterOrderNumber, departmentCode string) error {
	w.msgSeq++
	date := normalize.FormatHL7Date(at)
	messageTimeFFF := normalize.FormatHL7(at) + fmt.Sprintf("%03d", w.msgSeq%1000)
	condition := w.randomCondition(dataType)
	fileName := storage.FileName(w.patient.PatientID, date, dataType, requesterOrderNumber, messageTimeFFF, departmentCode, condition)

	path, err := w.writer.WriteMessage(w.patient.PatientID, date, dataType, fileName, []byte(msg.Render()))
	if err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	w.result.MessagesWritten++
	w.result.FilesWritten = append(w.result.FilesWritten, path)
	return nil
}

// randomCondition draws a condition flag, skewed toward normal for every
// data type and only ever drawn abnormal/undetermined for lab reports —
// the only message this profile carries an objective pass/fail signal in.
func (w *patientWorker) randomCondition(dataType storage.DataType) storage.ConditionFlag {
	if dataType != storage.DataTypeLab {
		return storage.ConditionNormal
	}
	if w.gen.Chance(0.15) {
		return storage.ConditionAbnormal
	}
	if w.gen.Chance(0.02) {
		return storage.ConditionUndetermined
	}
	return storage.ConditionNormal
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
