package hkaccessory

// TopicCharacteristicValueChanged is the emitter topic for value-change
// events. The transport layer subscribes here and fans events out to
// controllers according to their subscription state.
const TopicCharacteristicValueChanged = "characteristic-value-changed"

// CharacteristicValueChanged is emitted as the single event argument on a
// successful, notification-enabled value write.
type CharacteristicValueChanged struct {
	Aid   uint64      `json:"aid"`
	Iid   uint64      `json:"iid"`
	Value interface{} `json:"value"`
}
