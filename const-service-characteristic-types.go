package hkaccessory

import "strings"

// HapServiceType identifies the semantic role of a service.
// Values are the short form of the Apple-defined UUIDs.
type HapServiceType string

const (
	SType_HapProtocolInfo      HapServiceType = "A2"
	SType_AccessoryInfo        HapServiceType = "3E"
	SType_AirQualitySensor     HapServiceType = "8D"
	SType_BatteryService       HapServiceType = "96"
	SType_CarbonDioxideSensor  HapServiceType = "97"
	SType_CarbonMonoxideSensor HapServiceType = "7F"
	SType_ContactSensor        HapServiceType = "80"
	SType_Door                 HapServiceType = "81"
	SType_Fan                  HapServiceType = "B7"
	SType_GarageDoorOpener     HapServiceType = "41"
	SType_HeaterCooler         HapServiceType = "BC"
	SType_HumiditySensor       HapServiceType = "82"
	SType_LeakSensor           HapServiceType = "83"
	SType_LightBulb            HapServiceType = "43"
	SType_LightSensor          HapServiceType = "84"
	SType_LockMechanism        HapServiceType = "45"
	SType_MotionSensor         HapServiceType = "85"
	SType_OccupancySensor      HapServiceType = "86"
	SType_Outlet               HapServiceType = "47"
	SType_SecuritySystem       HapServiceType = "7E"
	SType_SmokeSensor          HapServiceType = "87"
	SType_Switch               HapServiceType = "49"
	SType_TemperatureSensor    HapServiceType = "8A"
	SType_Thermostat           HapServiceType = "4A"
	SType_Window               HapServiceType = "8B"
	SType_WindowCovering       HapServiceType = "8C"
)

var serviceTypeNames = map[HapServiceType]string{
	SType_HapProtocolInfo:      "HapProtocolInfo",
	SType_AccessoryInfo:        "AccessoryInfo",
	SType_AirQualitySensor:     "AirQualitySensor",
	SType_BatteryService:       "BatteryService",
	SType_CarbonDioxideSensor:  "CarbonDioxideSensor",
	SType_CarbonMonoxideSensor: "CarbonMonoxideSensor",
	SType_ContactSensor:        "ContactSensor",
	SType_Door:                 "Door",
	SType_Fan:                  "Fan",
	SType_GarageDoorOpener:     "GarageDoorOpener",
	SType_HeaterCooler:         "HeaterCooler",
	SType_HumiditySensor:       "HumiditySensor",
	SType_LeakSensor:           "LeakSensor",
	SType_LightBulb:            "LightBulb",
	SType_LightSensor:          "LightSensor",
	SType_LockMechanism:        "LockMechanism",
	SType_MotionSensor:         "MotionSensor",
	SType_OccupancySensor:      "OccupancySensor",
	SType_Outlet:               "Outlet",
	SType_SecuritySystem:       "SecuritySystem",
	SType_SmokeSensor:          "SmokeSensor",
	SType_Switch:               "Switch",
	SType_TemperatureSensor:    "TemperatureSensor",
	SType_Thermostat:           "Thermostat",
	SType_Window:               "Window",
	SType_WindowCovering:       "WindowCovering",
}

func (h HapServiceType) String() string {
	if name, ok := serviceTypeNames[h.ToShort()]; ok {
		return name
	}
	return string(h)
}

// ToShort strips the vendor suffix and leading zeros from a full UUID
// so that "0000003E-0000-1000-8000-0026BB765291" compares equal to "3E".
func (h HapServiceType) ToShort() HapServiceType {
	return HapServiceType(shortType(string(h)))
}

// HapCharacteristicType identifies the semantic role of a characteristic.
type HapCharacteristicType string

const (
	CType_Identify                   HapCharacteristicType = "14"
	CType_Manufacturer               HapCharacteristicType = "20"
	CType_Model                      HapCharacteristicType = "21"
	CType_Name                       HapCharacteristicType = "23"
	CType_SerialNumber               HapCharacteristicType = "30"
	CType_Version                    HapCharacteristicType = "37"
	CType_FirmwareRevision           HapCharacteristicType = "52"
	CType_HardwareRevision           HapCharacteristicType = "53"
	CType_On                         HapCharacteristicType = "25"
	CType_Brightness                 HapCharacteristicType = "8"
	CType_Hue                        HapCharacteristicType = "13"
	CType_Saturation                 HapCharacteristicType = "2F"
	CType_ColorTemperature           HapCharacteristicType = "CE"
	CType_Active                     HapCharacteristicType = "B0"
	CType_AirQuality                 HapCharacteristicType = "95"
	CType_BatteryLevel               HapCharacteristicType = "68"
	CType_ChargingState              HapCharacteristicType = "8F"
	CType_ContactSensorState         HapCharacteristicType = "6A"
	CType_CurrentAmbientLightLevel   HapCharacteristicType = "6B"
	CType_CurrentDoorState           HapCharacteristicType = "E"
	CType_CurrentHeatingCoolingState HapCharacteristicType = "F"
	CType_CurrentPosition            HapCharacteristicType = "6D"
	CType_CurrentRelativeHumidity    HapCharacteristicType = "10"
	CType_CurrentTemperature         HapCharacteristicType = "11"
	CType_HoldPosition               HapCharacteristicType = "6F"
	CType_LeakDetected               HapCharacteristicType = "70"
	CType_LockCurrentState           HapCharacteristicType = "1D"
	CType_LockTargetState            HapCharacteristicType = "1E"
	CType_Logs                       HapCharacteristicType = "1F"
	CType_MotionDetected             HapCharacteristicType = "22"
	CType_ObstructionDetected        HapCharacteristicType = "24"
	CType_OccupancyDetected          HapCharacteristicType = "71"
	CType_OutletInUse                HapCharacteristicType = "26"
	CType_PositionState              HapCharacteristicType = "72"
	CType_ProgrammableSwitchEvent    HapCharacteristicType = "73"
	CType_RotationDirection          HapCharacteristicType = "28"
	CType_RotationSpeed              HapCharacteristicType = "29"
	CType_SecuritySystemCurrentState HapCharacteristicType = "66"
	CType_SecuritySystemTargetState  HapCharacteristicType = "67"
	CType_SetupEndpoints             HapCharacteristicType = "118"
	CType_SmokeDetected              HapCharacteristicType = "76"
	CType_StatusActive               HapCharacteristicType = "75"
	CType_StatusFault                HapCharacteristicType = "77"
	CType_StatusLowBattery           HapCharacteristicType = "79"
	CType_StatusTampered             HapCharacteristicType = "7A"
	CType_TargetDoorState            HapCharacteristicType = "32"
	CType_TargetHeatingCoolingState  HapCharacteristicType = "33"
	CType_TargetPosition             HapCharacteristicType = "7C"
	CType_TargetRelativeHumidity     HapCharacteristicType = "34"
	CType_TargetTemperature          HapCharacteristicType = "35"
	CType_TemperatureDisplayUnits    HapCharacteristicType = "36"
	CType_Volume                     HapCharacteristicType = "119"
	CType_WaterLevel                 HapCharacteristicType = "B5"
)

var characteristicTypeNames = map[HapCharacteristicType]string{
	CType_Identify:                   "Identify",
	CType_Manufacturer:               "Manufacturer",
	CType_Model:                      "Model",
	CType_Name:                       "Name",
	CType_SerialNumber:               "SerialNumber",
	CType_Version:                    "Version",
	CType_FirmwareRevision:           "FirmwareRevision",
	CType_HardwareRevision:           "HardwareRevision",
	CType_On:                         "On",
	CType_Brightness:                 "Brightness",
	CType_Hue:                        "Hue",
	CType_Saturation:                 "Saturation",
	CType_ColorTemperature:           "ColorTemperature",
	CType_Active:                     "Active",
	CType_AirQuality:                 "AirQuality",
	CType_BatteryLevel:               "BatteryLevel",
	CType_ChargingState:              "ChargingState",
	CType_ContactSensorState:         "ContactSensorState",
	CType_CurrentAmbientLightLevel:   "CurrentAmbientLightLevel",
	CType_CurrentDoorState:           "CurrentDoorState",
	CType_CurrentHeatingCoolingState: "CurrentHeatingCoolingState",
	CType_CurrentPosition:            "CurrentPosition",
	CType_CurrentRelativeHumidity:    "CurrentRelativeHumidity",
	CType_CurrentTemperature:         "CurrentTemperature",
	CType_HoldPosition:               "HoldPosition",
	CType_LeakDetected:               "LeakDetected",
	CType_LockCurrentState:           "LockCurrentState",
	CType_LockTargetState:            "LockTargetState",
	CType_Logs:                       "Logs",
	CType_MotionDetected:             "MotionDetected",
	CType_ObstructionDetected:        "ObstructionDetected",
	CType_OccupancyDetected:          "OccupancyDetected",
	CType_OutletInUse:                "OutletInUse",
	CType_PositionState:              "PositionState",
	CType_ProgrammableSwitchEvent:    "ProgrammableSwitchEvent",
	CType_RotationDirection:          "RotationDirection",
	CType_RotationSpeed:              "RotationSpeed",
	CType_SecuritySystemCurrentState: "SecuritySystemCurrentState",
	CType_SecuritySystemTargetState:  "SecuritySystemTargetState",
	CType_SetupEndpoints:             "SetupEndpoints",
	CType_SmokeDetected:              "SmokeDetected",
	CType_StatusActive:               "StatusActive",
	CType_StatusFault:                "StatusFault",
	CType_StatusLowBattery:           "StatusLowBattery",
	CType_StatusTampered:             "StatusTampered",
	CType_TargetDoorState:            "TargetDoorState",
	CType_TargetHeatingCoolingState:  "TargetHeatingCoolingState",
	CType_TargetPosition:             "TargetPosition",
	CType_TargetRelativeHumidity:     "TargetRelativeHumidity",
	CType_TargetTemperature:          "TargetTemperature",
	CType_TemperatureDisplayUnits:    "TemperatureDisplayUnits",
	CType_Volume:                     "Volume",
	CType_WaterLevel:                 "WaterLevel",
}

func (h HapCharacteristicType) String() string {
	if name, ok := characteristicTypeNames[h.ToShort()]; ok {
		return name
	}
	return string(h)
}

// ToShort strips the vendor suffix and leading zeros from a full UUID.
func (h HapCharacteristicType) ToShort() HapCharacteristicType {
	return HapCharacteristicType(shortType(string(h)))
}

func shortType(s string) string {
	a := strings.Split(s, "-")
	p := a[0]
	for i := 0; i < len(p); i += 1 {
		if p[i] != '0' {
			return p[i:]
		}
	}
	// all-zero segment: leave the input as is
	return s
}
