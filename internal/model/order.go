package model

import "github.com/gyeh/ssmixtwins/internal/hl7"

// orderNumbers is the ORC-2/ORC-3/recipe/admin-number group shared by
// prescription and injection orders, and the requester_group_number
// derived from it.
//
// Grounded on objects/drug_orders.py, where both order kinds compute
// requester_group_number = "_".join([requester_order_number, recipe_number,
// order_admin_number]).
type orderNumbers struct {
	RequesterOrderNumber string
	FillerOrderNumber    string
	RecipeNumber         string
	OrderAdminNumber     string
}

func newOrderNumbers(requester, filler, recipe, adminNumber string) (orderNumbers, error) {
	if err := requireDigitsMaxLen("RequesterOrderNumber", requester, 15); err != nil {
		return orderNumbers{}, err
	}
	requester = ZeroPad15(requester)
	if filler != "" {
		if err := requireDigitsMaxLen("FillerOrderNumber", filler, 16); err != nil {
			return orderNumbers{}, err
		}
		filler = ZeroPad15(filler)
	}
	if err := requireDigitsMaxLen("RecipeNumber", recipe, 2); err != nil {
		return orderNumbers{}, err
	}
	if len(recipe) != 2 {
		return orderNumbers{}, newFieldErr("RecipeNumber", "must be exactly 2 digits, got %q", recipe)
	}
	if err := requireDigitsMaxLen("OrderAdminNumber", adminNumber, 3); err != nil {
		return orderNumbers{}, err
	}
	if len(adminNumber) != 3 {
		return orderNumbers{}, newFieldErr("OrderAdminNumber", "must be exactly 3 digits, got %q", adminNumber)
	}
	return orderNumbers{
		RequesterOrderNumber: requester,
		FillerOrderNumber:    filler,
		RecipeNumber:         recipe,
		OrderAdminNumber:     adminNumber,
	}, nil
}

// RequesterGroupNumber is the ORC-grouping key shared by every component of
// one compound order.
func (n orderNumbers) RequesterGroupNumber() string {
	return n.RequesterOrderNumber + "_" + n.RecipeNumber + "_" + n.OrderAdminNumber
}

// PrescriptionOrder is one RXE/RXC/RXR group for an OMP^O09 message.
//
// Grounded on objects/drug_orders.py::PrescriptionOrder. Unlike injection
// orders, dispense_amount/dispense_unit_code and prescription_number are
// required here — an asymmetry the original keeps despite its own code
// tables marking prescription_number optional.
type PrescriptionOrder struct {
	orderNumbers
	DrugCode           string
	DrugCodeSystem     string
	MinimumDose        hl7.Field
	DoseUnitCode       string
	DosageFormCode     string
	DispenseAmount     string
	DispenseUnitCode   string
	PrescriptionNumber string
	RouteCode          string
	OrderControl       string
}

// NewPrescriptionOrder validates and constructs a PrescriptionOrder.
func NewPrescriptionOrder(
	drugCode, drugCodeSystem string, minimumDose hl7.Field,
	doseUnitCode, dosageFormCode, dispenseAmount, dispenseUnitCode, prescriptionNumber string,
	routeCode, orderControl string,
	requester, filler, recipe, adminNumber string,
) (*PrescriptionOrder, error) {
	if err := requireNonEmpty("DrugCode", drugCode); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("DrugCodeSystem", drugCodeSystem); err != nil {
		return nil, err
	}
	if minimumDose.IsAbsent() {
		return nil, newFieldErr("MinimumDose", "is required for prescription orders")
	}
	if err := requireMaxLen("MinimumDose", minimumDose.String(), 20); err != nil {
		return nil, err
	}
	if err := requireInTable("DoseUnitCode", doseUnitCode, DoseUnit); err != nil {
		return nil, err
	}
	if err := requireInTable("DosageFormCode", dosageFormCode, DosageForm); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("DispenseAmount", dispenseAmount); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("DispenseUnitCode", dispenseUnitCode); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("PrescriptionNumber", prescriptionNumber); err != nil {
		return nil, err
	}
	if err := requireMaxLen("PrescriptionNumber", prescriptionNumber, 20); err != nil {
		return nil, err
	}
	if err := requireInTable("RouteCode", routeCode, RouteCode); err != nil {
		return nil, err
	}
	if err := requireInTable("OrderControl", orderControl, OrderControl); err != nil {
		return nil, err
	}
	nums, err := newOrderNumbers(requester, filler, recipe, adminNumber)
	if err != nil {
		return nil, err
	}
	return &PrescriptionOrder{
		orderNumbers:       nums,
		DrugCode:           drugCode,
		DrugCodeSystem:     drugCodeSystem,
		MinimumDose:        minimumDose,
		DoseUnitCode:       doseUnitCode,
		DosageFormCode:     dosageFormCode,
		DispenseAmount:     dispenseAmount,
		DispenseUnitCode:   dispenseUnitCode,
		PrescriptionNumber: prescriptionNumber,
		RouteCode:          routeCode,
		OrderControl:       orderControl,
	}, nil
}

// InjectionComponent is one RXC segment within an injection order:
// either the base solution (type B) or an additive (type A).
//
// Grounded on objects/drug_orders.py::InjectionComponent.
type InjectionComponent struct {
	ComponentType string
	ComponentCode string
	ComponentName string
	Quantity      string
	UnitCode      string
}

// NewInjectionComponent validates and constructs an InjectionComponent.
func NewInjectionComponent(componentType, componentCode, componentName, quantity, unitCode string) (*InjectionComponent, error) {
	if componentType != "A" && componentType != "B" {
		return nil, newFieldErr("ComponentType", `must be "A" or "B", got %q`, componentType)
	}
	if err := requireNonEmpty("ComponentCode", componentCode); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("ComponentName", componentName); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("UnitCode", unitCode); err != nil {
		return nil, err
	}
	return &InjectionComponent{
		ComponentType: componentType,
		ComponentCode: componentCode,
		ComponentName: componentName,
		Quantity:      quantity,
		UnitCode:      unitCode,
	}, nil
}

// InjectionOrder is one RXE/RXC*/RXR group for an OMP^O09 message.
//
// Grounded on objects/drug_orders.py::InjectionOrder. dispense_amount is
// optional here, unlike PrescriptionOrder — the injection side of the
// original leaves it empty 80% of the time.
type InjectionOrder struct {
	orderNumbers
	InjectionTypeCode string
	MinimumDose       hl7.Field
	DoseUnitCode      string
	DoseUnitName      string
	DoseUnitCodeSystem string
	DispenseAmount    string
	RouteCode         string
	RouteDeviceCode   string
	Components        []*InjectionComponent
	OrderControl      string
}

// NewInjectionOrder validates and constructs an InjectionOrder. DoseUnitCode
// may fall outside the MERIT-9 table (e.g. an ISO unit); when it does,
// DoseUnitName and DoseUnitCodeSystem become required so the unit is still
// self-describing on the wire.
func NewInjectionOrder(
	injectionTypeCode string, minimumDose hl7.Field,
	doseUnitCode, doseUnitName, doseUnitCodeSystem, dispenseAmount string,
	routeCode, routeDeviceCode string, components []*InjectionComponent, orderControl string,
	requester, filler, recipe, adminNumber string,
) (*InjectionOrder, error) {
	if err := requireInTable("InjectionTypeCode", injectionTypeCode, InjectionType); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("InjectionTypeCode", injectionTypeCode); err != nil {
		return nil, err
	}
	if !contains(DoseUnit, doseUnitCode) {
		if err := requireNonEmpty("DoseUnitName", doseUnitName); err != nil {
			return nil, err
		}
		if err := requireNonEmpty("DoseUnitCodeSystem", doseUnitCodeSystem); err != nil {
			return nil, err
		}
	}
	if err := requireInTable("RouteCode", routeCode, RouteCode); err != nil {
		return nil, err
	}
	if err := requireInTable("RouteDeviceCode", routeDeviceCode, RouteAdminDevice); err != nil {
		return nil, err
	}
	if len(components) == 0 {
		return nil, newFieldErr("Components", "at least one component is required")
	}
	if err := requireInTable("OrderControl", orderControl, OrderControl); err != nil {
		return nil, err
	}
	nums, err := newOrderNumbers(requester, filler, recipe, adminNumber)
	if err != nil {
		return nil, err
	}
	return &InjectionOrder{
		orderNumbers:       nums,
		InjectionTypeCode:  injectionTypeCode,
		MinimumDose:        minimumDose,
		DoseUnitCode:       doseUnitCode,
		DoseUnitName:       doseUnitName,
		DoseUnitCodeSystem: doseUnitCodeSystem,
		DispenseAmount:     dispenseAmount,
		RouteCode:          routeCode,
		RouteDeviceCode:    routeDeviceCode,
		Components:         components,
		OrderControl:       orderControl,
	}, nil
}
