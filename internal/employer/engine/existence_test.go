package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"verigate/internal/employer/refdata"
)

func testDirectory(t *testing.T) *refdata.Directory {
	t.Helper()
	directory, err := refdata.NewDirectory(refdata.DefaultAddresses())
	if err != nil {
		t.Fatalf("build directory: %v", err)
	}
	return directory
}

func TestExistenceGate(t *testing.T) {
	gate := NewExistenceGate(testDirectory(t))

	valid := EmployerRecord{
		EmployerAddress: "100 King St, Toronto",
		EmployerPhone:   "4161234567",
	}

	t.Run("passes known address with plausible phone", func(t *testing.T) {
		assert.Equal(t, VerdictPass, gate.Evaluate(valid))
	})

	t.Run("fails unknown address", func(t *testing.T) {
		record := valid
		record.EmployerAddress = "1 Nowhere Blvd, Atlantis"
		assert.Equal(t, VerdictFail, gate.Evaluate(record))
	})

	t.Run("fails empty phone even with valid address", func(t *testing.T) {
		record := valid
		record.EmployerPhone = ""
		assert.Equal(t, VerdictFail, gate.Evaluate(record))
	})

	t.Run("fails short phone", func(t *testing.T) {
		record := valid
		record.EmployerPhone = "416123"
		assert.Equal(t, VerdictFail, gate.Evaluate(record))
	})

	t.Run("short phone fails regardless of address validity", func(t *testing.T) {
		record := EmployerRecord{
			EmployerAddress: "1 Nowhere Blvd, Atlantis",
			EmployerPhone:   "416",
		}
		assert.Equal(t, VerdictFail, gate.Evaluate(record))
	})
}
