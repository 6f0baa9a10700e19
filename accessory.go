package hkaccessory

import (
	"github.com/olebedev/emitter"

	"github.com/hkontrol/hkaccessory/log"
)

// Accessory owns a set of services and acts as the instance-id registry
// for the characteristics attached to them. It embeds the change-event
// emitter shared by all of its characteristics; the transport layer
// subscribes on it to forward events to controllers.
type Accessory struct {
	emitter.Emitter `json:"-"`

	Id       uint64     `json:"aid"`
	Services []*Service `json:"services"`

	nextIid uint64
}

// Accessories is the payload shape of the /accessories endpoint.
type Accessories struct {
	Accs []*Accessory `json:"accessories,omitempty"`
}

func NewAccessory(id uint64) *Accessory {
	return &Accessory{
		Id:      id,
		nextIid: 1,
	}
}

// AddService attaches a fully built service: it assigns the service and
// characteristic instance ids, stamps the accessory id and injects the
// shared event emitter. Characteristics added to the service afterwards
// are not registered.
func (a *Accessory) AddService(s *Service) {
	s.Id = a.nextIid
	a.nextIid++

	for _, c := range s.Characteristics {
		c.SetIid(a.nextIid)
		a.nextIid++
		c.SetAid(a.Id)
		c.SetEventEmitter(&a.Emitter)
	}

	a.Services = append(a.Services, s)
	log.Debug.Printf("accessory %d: attached %s service iid=%d with %d characteristics",
		a.Id, s.Type, s.Id, len(s.Characteristics))
}

// GetService returns the first service of the given type, or nil.
func (a *Accessory) GetService(serviceType HapServiceType) *Service {
	for _, s := range a.Services {
		if s.Type.ToShort() == serviceType.ToShort() {
			return s
		}
	}
	return nil
}

// GetCharacteristic returns the first characteristic of the given type
// across all services, or nil.
func (a *Accessory) GetCharacteristic(characteristicType HapCharacteristicType) HapCharacteristic {
	for _, s := range a.Services {
		if c := s.GetCharacteristic(characteristicType); c != nil {
			return c
		}
	}
	return nil
}
