package hkaccessory

// AccessoryInfo carries the mandatory identification characteristics
// every accessory exposes.
type AccessoryInfo struct {
	*Service

	Identify         *Characteristic[bool]
	Name             *Characteristic[string]
	Manufacturer     *Characteristic[string]
	Model            *Characteristic[string]
	SerialNumber     *Characteristic[string]
	FirmwareRevision *Characteristic[string]
}

// NewAccessoryInfo builds the accessory-information service. The returned
// service is ready to be attached with Accessory.AddService.
func NewAccessoryInfo(name, manufacturer, model, serialNumber, firmwareRevision string) *AccessoryInfo {
	svc := &AccessoryInfo{Service: NewService(SType_AccessoryInfo)}

	svc.Identify = NewBool(CType_Identify, PermPairedWrite)
	svc.Identify.SetDescription("Identify")
	svc.AddCharacteristic(svc.Identify)

	svc.Name = NewString(CType_Name, PermPairedRead)
	_ = svc.Name.SetValue(name)
	svc.AddCharacteristic(svc.Name)

	svc.Manufacturer = NewString(CType_Manufacturer, PermPairedRead)
	_ = svc.Manufacturer.SetValue(manufacturer)
	svc.AddCharacteristic(svc.Manufacturer)

	svc.Model = NewString(CType_Model, PermPairedRead)
	_ = svc.Model.SetValue(model)
	svc.AddCharacteristic(svc.Model)

	svc.SerialNumber = NewString(CType_SerialNumber, PermPairedRead)
	_ = svc.SerialNumber.SetValue(serialNumber)
	svc.AddCharacteristic(svc.SerialNumber)

	svc.FirmwareRevision = NewString(CType_FirmwareRevision, PermPairedRead)
	_ = svc.FirmwareRevision.SetValue(firmwareRevision)
	svc.AddCharacteristic(svc.FirmwareRevision)

	return svc
}
