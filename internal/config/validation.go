package config

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func init() {
	// Report field names as they are written in the YAML file.
	validation.ErrorTag = "yaml"
}

// Validate checks the configuration after defaults have been applied.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Correction),
		validation.Field(&c.Links),
	)
}

// Validate checks the backend selection and the settings it needs.
func (c CorrectionConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Backend,
			validation.Required,
			validation.In(BackendCommand, BackendNATS, BackendMapping).
				Error("must be one of command, nats, mapping")),
		validation.Field(&c.Timeout, validation.Required, validation.By(positiveDuration)),
		validation.Field(&c.Command, validation.Skip.When(c.Backend != BackendCommand)),
		validation.Field(&c.NATS, validation.Skip.When(c.Backend != BackendNATS)),
		validation.Field(&c.Mapping,
			validation.When(c.Backend == BackendMapping, validation.Required.Error("must not be empty for the mapping backend"))),
	)
}

func (c CommandConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Program, validation.Required),
	)
}

func (c NATSConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.URL, validation.Required),
		validation.Field(&c.Subject, validation.Required),
	)
}

func (l LinksConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.SchemePrefixes, validation.Each(validation.Required)),
		validation.Field(&l.AnchorPrefixes, validation.Each(validation.Required)),
	)
}

func positiveDuration(value any) error {
	s, _ := value.(string)
	d, err := time.ParseDuration(s)
	if err != nil {
		return errors.New("must be a duration such as 30s or 2m")
	}
	if d <= 0 {
		return errors.New("must be positive")
	}
	return nil
}
