package hkaccessory

import (
	"testing"
)

func TestCharacteristic_RoundTrip(t *testing.T) {
	c := NewUInt8(CType_Brightness, PermPairedRead, PermPairedWrite)

	if err := c.SetValue(42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := c.Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 42 {
		t.Errorf("expected 42, got %v", v)
	}
}

func TestCharacteristic_Defaults(t *testing.T) {
	c := NewBool(CType_On, PermPairedRead)

	v, err := c.Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != false {
		t.Errorf("expected zero value false, got %v", v)
	}
	if c.Format() != FormatBool {
		t.Errorf("expected format bool, got %v", c.Format())
	}
	if c.Type() != CType_On {
		t.Errorf("expected type %v, got %v", CType_On, c.Type())
	}
}

func TestCharacteristic_UpdateHookOrdering(t *testing.T) {
	c := NewInt32(CType_TargetPosition, PermPairedRead, PermPairedWrite)
	if err := c.SetValue(10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	type pair struct{ old, new int32 }
	var pairs []pair
	c.SetUpdatable(UpdatableFunc[int32](func(hapType HapCharacteristicType, oldVal, newVal int32) {
		if hapType != CType_TargetPosition {
			t.Errorf("hook got wrong hap type %v", hapType)
		}
		// the stored value must not be committed yet
		if c.value != oldVal {
			t.Errorf("value committed before hook: stored %v, old %v", c.value, oldVal)
		}
		pairs = append(pairs, pair{oldVal, newVal})
	}))

	if err := c.SetValue(20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(pairs) != 1 {
		t.Fatalf("expected exactly one recorded pair, got %d", len(pairs))
	}
	if pairs[0].old != 10 || pairs[0].new != 20 {
		t.Errorf("expected pair (10, 20), got (%v, %v)", pairs[0].old, pairs[0].new)
	}
	if c.value != 20 {
		t.Errorf("expected committed value 20, got %v", c.value)
	}
}

func TestCharacteristic_ReadHookFeedsWritePath(t *testing.T) {
	c := NewFloat(CType_CurrentTemperature, PermPairedRead)

	c.SetReadable(ReadableFunc[float64](func(hapType HapCharacteristicType) float64 {
		return 21.5
	}))

	updates := 0
	c.SetUpdatable(UpdatableFunc[float64](func(hapType HapCharacteristicType, oldVal, newVal float64) {
		updates++
	}))

	for i := 1; i <= 3; i++ {
		v, err := c.Value()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v != 21.5 {
			t.Errorf("expected 21.5, got %v", v)
		}
		if updates != i {
			t.Errorf("expected %d update hook invocations, got %d", i, updates)
		}
	}
}

func TestCharacteristic_HookReplacement(t *testing.T) {
	c := NewBool(CType_On, PermPairedRead, PermPairedWrite)

	first, second := 0, 0
	c.SetUpdatable(UpdatableFunc[bool](func(HapCharacteristicType, bool, bool) { first++ }))
	c.SetUpdatable(UpdatableFunc[bool](func(HapCharacteristicType, bool, bool) { second++ }))

	_ = c.SetValue(true)

	if first != 0 {
		t.Errorf("replaced hook still invoked %d times", first)
	}
	if second != 1 {
		t.Errorf("expected one invocation of the replacement hook, got %d", second)
	}

	c.SetUpdatable(nil)
	_ = c.SetValue(false)
	if second != 1 {
		t.Errorf("detached hook still invoked")
	}
}

func TestCharacteristic_Metadata(t *testing.T) {
	c := NewUInt8(CType_Brightness, PermPairedRead, PermPairedWrite, PermEvents)
	c.SetDescription("Brightness")
	c.SetUnit(UnitPercentage)
	c.SetMinValue(0)
	c.SetMaxValue(100)
	c.SetStepValue(1)

	if d, ok := c.Description(); !ok || d != "Brightness" {
		t.Errorf("description = %q, %v", d, ok)
	}
	if u, ok := c.Unit(); !ok || u != UnitPercentage {
		t.Errorf("unit = %q, %v", u, ok)
	}
	if min, ok := c.MinValue(); !ok || min != 0 {
		t.Errorf("min = %v, %v", min, ok)
	}
	if max, ok := c.MaxValue(); !ok || max != 100 {
		t.Errorf("max = %v, %v", max, ok)
	}
	if step, ok := c.StepValue(); !ok || step != 1 {
		t.Errorf("step = %v, %v", step, ok)
	}
	if _, ok := c.MaxLen(); ok {
		t.Errorf("max len should be unset")
	}

	// bounds are descriptive only, out-of-range writes still commit
	if err := c.SetValue(200); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.value != 200 {
		t.Errorf("expected out-of-range value to commit, got %v", c.value)
	}
}

func TestCharacteristic_IdAssignment(t *testing.T) {
	c := NewString(CType_Name, PermPairedRead)
	c.SetIid(7)
	c.SetAid(3)

	if c.Iid() != 7 {
		t.Errorf("iid = %d", c.Iid())
	}
	if c.accessoryId != 3 {
		t.Errorf("aid = %d", c.accessoryId)
	}
}
