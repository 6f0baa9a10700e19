package hkaccessory

// Service groups the characteristics that together implement one
// capability of an accessory, e.g. a light bulb or a temperature sensor.
type Service struct {
	Id              uint64              `json:"iid"`
	Type            HapServiceType      `json:"type"`
	Characteristics []HapCharacteristic `json:"characteristics"`
	Hidden          *bool               `json:"hidden,omitempty"`
	Primary         *bool               `json:"primary,omitempty"`
	Linked          []uint64            `json:"linked,omitempty"`
}

func NewService(serviceType HapServiceType) *Service {
	return &Service{
		Type: serviceType,
	}
}

func (s *Service) AddCharacteristic(c HapCharacteristic) {
	s.Characteristics = append(s.Characteristics, c)
}

// GetCharacteristic returns the first characteristic of the given type,
// or nil.
func (s *Service) GetCharacteristic(characteristicType HapCharacteristicType) HapCharacteristic {
	for _, c := range s.Characteristics {
		if c.Type().ToShort() == characteristicType.ToShort() {
			return c
		}
	}
	return nil
}

func (s *Service) SetHidden(hidden bool) {
	s.Hidden = &hidden
}

func (s *Service) SetPrimary(primary bool) {
	s.Primary = &primary
}
