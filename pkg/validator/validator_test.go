package validator

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type lineFixture struct {
	ProductID uuid.UUID `validate:"uuid_required"`
	Quantity  int       `validate:"required,gt=0"`
}

func TestValidateStructPassesCleanInput(t *testing.T) {
	errs := ValidateStruct(&lineFixture{ProductID: uuid.New(), Quantity: 2})
	assert.Empty(t, errs)
}

func TestUUIDRequiredRejectsZeroID(t *testing.T) {
	errs := ValidateStruct(&lineFixture{Quantity: 2})
	assert.Len(t, errs, 1)
	assert.Equal(t, "uuid_required", errs[0].Tag)
}

func TestValidateStructReportsEachFailedField(t *testing.T) {
	errs := ValidateStruct(&lineFixture{})
	assert.Len(t, errs, 2)
}
