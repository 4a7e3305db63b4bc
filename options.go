package otfeyda

import (
	"time"

	"github.com/nsip/otf-eyda/internal/assessment"
	"github.com/nsip/otf-eyda/internal/util"
	"github.com/pkg/errors"
)

type Option func(*EydaService) error

//
// apply all supplied options to the service
// returns any error encountered while applying the options
//
func (s *EydaService) setOptions(options ...Option) error {
	for _, opt := range options {
		if err := opt(s); err != nil {
			return err
		}
	}
	return nil
}

//
// name for this service instance,
// if blank a readable unique name is generated
//
func Name(name string) Option {
	return func(s *EydaService) error {
		if name != "" {
			s.serviceName = name
			return nil
		}
		s.serviceName = util.GenerateName()
		return nil
	}
}

//
// unique id for this service instance,
// if blank a nuid is generated
//
func ID(id string) Option {
	return func(s *EydaService) error {
		if id != "" {
			s.serviceID = id
			return nil
		}
		s.serviceID = util.GenerateID()
		return nil
	}
}

// host address the service listens on
func Host(hostName string) Option {
	return func(s *EydaService) error {
		if hostName == "" {
			return errors.New("must have a host name for service")
		}
		s.serviceHost = hostName
		return nil
	}
}

//
// port the service listens on,
// 0 picks any available port
//
func Port(port int) Option {
	return func(s *EydaService) error {
		if port != 0 {
			s.servicePort = port
			return nil
		}
		p, err := util.AvailablePort()
		if err != nil {
			return err
		}
		s.servicePort = p
		return nil
	}
}

//
// location of the assessment document,
// a file path or http(s) url
//
func Questions(source string) Option {
	return func(s *EydaService) error {
		s.questionsSource = source
		return nil
	}
}

//
// use an already loaded document instead of
// fetching one from the questions source
//
func Document(doc *assessment.Document) Option {
	return func(s *EydaService) error {
		if doc == nil {
			return errors.New("document option must not be nil")
		}
		if err := doc.Validate(); err != nil {
			return errors.Wrap(err, "invalid assessment document")
		}
		s.doc = doc
		return nil
	}
}

//
// the scoring year; 0 uses the current calendar year
//
func CurrentYear(year int) Option {
	return func(s *EydaService) error {
		if year < 0 {
			return errors.Errorf("invalid current year %d", year)
		}
		if year == 0 {
			year = time.Now().Year()
		}
		s.currentYear = year
		return nil
	}
}

//
// number of years before the current year that
// are tracked alongside it
//
func History(years int) Option {
	return func(s *EydaService) error {
		if years < 0 {
			return errors.Errorf("history must be zero or more years, got %d", years)
		}
		s.history = years
		return nil
	}
}

// random seed for the sample data generator, 0 seeds from the clock
func Seed(seed int64) Option {
	return func(s *EydaService) error {
		s.seed = seed
		return nil
	}
}
