package hkaccessory

import "encoding/json"

// MarshalJSON emits the characteristic's wire representation. Optional
// fields are dropped entirely when unset, and the value field is present
// only when the paired-read permission is.
func (c *Characteristic[T]) MarshalJSON() ([]byte, error) {
	// field order is fixed to keep serialized fixtures byte-stable
	type wireCharacteristic struct {
		Iid         uint64                `json:"iid"`
		Type        HapCharacteristicType `json:"type"`
		Format      Format                `json:"format"`
		Perms       []Perm                `json:"perms"`
		Description *string               `json:"description,omitempty"`
		Events      *bool                 `json:"ev,omitempty"`
		Value       *T                    `json:"value,omitempty"`
		Unit        *Unit                 `json:"unit,omitempty"`
		MaxValue    *T                    `json:"maxValue,omitempty"`
		MinValue    *T                    `json:"minValue,omitempty"`
		MinStep     *T                    `json:"minStep,omitempty"`
		MaxLen      *uint16               `json:"maxLen,omitempty"`
		MaxDataLen  *uint32               `json:"maxDataLen,omitempty"`
		ValidValues []interface{}         `json:"valid-values,omitempty"`
		ValidRange  *[2]T                 `json:"valid-values-range,omitempty"`
	}

	w := wireCharacteristic{
		Iid:         c.id,
		Type:        c.hapType,
		Format:      c.format,
		Perms:       c.perms,
		Description: c.description,
		Events:      c.eventNotifications,
		Unit:        c.unit,
		MaxValue:    c.maxValue,
		MinValue:    c.minValue,
		MinStep:     c.stepValue,
		MaxLen:      c.maxLen,
		MaxDataLen:  c.maxDataLen,
		ValidRange:  c.validValuesRange,
	}

	// element-wise, so that a []uint8 valid-values list stays a number
	// array instead of collapsing into encoding/json's base64 form
	if len(c.validValues) > 0 {
		w.ValidValues = make([]interface{}, len(c.validValues))
		for i, v := range c.validValues {
			w.ValidValues[i] = v
		}
	}

	if hasPerm(c.perms, PermPairedRead) {
		v := c.value
		// a never-set tlv8/data payload is an empty blob, not null
		if bs, ok := interface{}(&v).(*[]byte); ok && *bs == nil {
			*bs = []byte{}
		}
		w.Value = &v
	}

	return json.Marshal(w)
}
