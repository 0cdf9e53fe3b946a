package generate

import (
	"fmt"

	"github.com/gyeh/ssmixtwins/internal/model"
	"github.com/gyeh/ssmixtwins/internal/synth"
)

// rosterWorkerIndex seeds the shared physician-roster/hospital generator.
// It is a sentinel distinct from every real per-patient worker index (which
// range over [0, patient count)), so the roster never collides with, or
// varies alongside, any patient's own synthesized attributes.
const rosterWorkerIndex = -1

// BuildRoster synthesizes the read-only hospital identity and physician
// pool shared by every worker in a run, once, from the run's own seed.
// Building it here rather than per-worker keeps it identical regardless of
// how many patients a run processes or how many workers process them,
// matching spec §5's determinism law.
//
// Grounded on src/main.py::create_ssmix, which builds random_physicians
// and random_hospital once before fanning out per-file work.
func BuildRoster(seed int64, physicianCount int) (*model.Hospital, []*model.Physician, error) {
	gen := synth.NewGenerator(seed, rosterWorkerIndex)

	postalCode, address := gen.RandomAddress()
	hospital, err := model.NewHospital(model.DefaultFacilityID, model.DefaultHospitalName, postalCode, address, gen.RandomPhone("03"))
	if err != nil {
		return nil, nil, fmt.Errorf("build hospital: %w", err)
	}

	physicians := make([]*model.Physician, 0, physicianCount)
	for i := 0; i < physicianCount; i++ {
		lastName, firstName, lastNameKana, firstNameKana := gen.RandomPersonName()
		phys, err := model.NewPhysician(
			fmt.Sprintf("PHY%05d", i+1),
			gen.RandomDepartmentCode(),
			lastName, firstName, lastNameKana, firstNameKana,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("build physician %d: %w", i, err)
		}
		physicians = append(physicians, phys)
	}
	return hospital, physicians, nil
}
