package domain

import "strings"

// DogGender enumerates the accepted dog gender values.
type DogGender string

const (
	DogGenderMale    DogGender = "male"
	DogGenderFemale  DogGender = "female"
	DogGenderUnknown DogGender = "unknown"
)

// DogSize enumerates the accepted dog size categories.
type DogSize string

const (
	DogSizeToy    DogSize = "toy"
	DogSizeSmall  DogSize = "small"
	DogSizeMedium DogSize = "medium"
	DogSizeLarge  DogSize = "large"
	DogSizeGiant  DogSize = "giant"
)

// Dog carries the information about the assessed dog that accompanies an
// assessment. Only Name is mandatory; the rest enriches recommendation
// prompts when present.
type Dog struct {
	// Name is the dog's name. It must be non-blank.
	Name string `json:"name"`
	// Breed is the dog's breed, if known.
	Breed string `json:"breed,omitempty"`
	// Age is a free-form age description, e.g. "2 years" or "6 months".
	Age string `json:"age,omitempty"`
	// WeightKg is the dog's weight in kilograms, zero when unknown.
	WeightKg float64 `json:"weightKg,omitempty"`
	// Gender is the dog's gender, empty when unknown.
	Gender DogGender `json:"gender,omitempty"`
	// Size is the dog's size category, empty when unknown.
	Size DogSize `json:"size,omitempty"`
	// OwnerName is the owner's name, if provided.
	OwnerName string `json:"ownerName,omitempty"`
}

// Validate reports whether the dog information is acceptable for an
// assessment submission.
func (d Dog) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrDogNameRequired
	}

	return nil
}
