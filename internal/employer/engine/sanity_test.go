package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"verigate/internal/employer/refdata"
)

func TestSanityGate(t *testing.T) {
	gate := NewSanityGate(testDirectory(t), refdata.HighInfrastructureRoles(), 0)

	base := EmployerRecord{
		EmployerAddress:      "100 King St, Toronto",
		ApplicantHomeAddress: "12 Maple Ave, Toronto",
		JobTitle:             "Software Engineer",
	}

	t.Run("passes short commute", func(t *testing.T) {
		assert.Equal(t, VerdictPass, gate.Evaluate(base))
	})

	t.Run("reviews unresolvable employer address", func(t *testing.T) {
		record := base
		record.EmployerAddress = "1 Nowhere Blvd, Atlantis"
		assert.Equal(t, VerdictReview, gate.Evaluate(record))
	})

	t.Run("reviews unresolvable applicant address", func(t *testing.T) {
		record := base
		record.ApplicantHomeAddress = "1 Nowhere Blvd, Atlantis"
		assert.Equal(t, VerdictReview, gate.Evaluate(record))
	})

	t.Run("fails implausible commute for on-site role", func(t *testing.T) {
		record := base
		record.EmployerAddress = "500 Industrial Rd, Calgary"
		assert.Equal(t, VerdictFail, gate.Evaluate(record))
	})

	t.Run("remote flag excuses the commute", func(t *testing.T) {
		record := base
		record.EmployerAddress = "500 Industrial Rd, Calgary"
		record.IsRemote = true
		assert.Equal(t, VerdictPass, gate.Evaluate(record))
	})

	t.Run("fails infrastructure role at residential zoning even at zero distance", func(t *testing.T) {
		record := EmployerRecord{
			EmployerAddress:      "12 Maple Ave, Toronto",
			ApplicantHomeAddress: "12 Maple Ave, Toronto",
			JobTitle:             "Warehouse Operator",
		}
		assert.Equal(t, VerdictFail, gate.Evaluate(record))
	})

	t.Run("office role at residential zoning passes", func(t *testing.T) {
		record := base
		record.EmployerAddress = "12 Maple Ave, Toronto"
		assert.Equal(t, VerdictPass, gate.Evaluate(record))
	})
}
