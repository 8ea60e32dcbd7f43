package pipeline

import (
	"handhelds/internal"
)

var (
	mentionsUSBC      = has("usb-c", "usb c", "type-c", "type c", "usbc")
	mentionsBluetooth = either(has("bluetooth"), hasWord("bt"))
)

var speakerLadder = ladder{
	{negative, "none"},
	{has("surround"), "surround"},
	{has("stereo", "dual"), "stereo"},
	{has("mono", "single"), "mono"},
}

func ParseConnectivity(raw string) *internal.Connectivity {
	text, lower, ok := cellText(raw)
	if !ok {
		return nil
	}
	return &internal.Connectivity{
		Raw:          text,
		HasWifi:      has("wifi", "wi-fi", "wlan", "802.11")(lower),
		HasBluetooth: mentionsBluetooth(lower),
		HasNFC:       has("nfc")(lower),
		HasCellular:  either(has("cellular", "lte", "sim card"), hasWord("4g", "5g", "sim"))(lower),
		HasEthernet:  either(has("ethernet", "rj45", "rj-45"), hasWord("lan"))(lower),
	}
}

func ParseCooling(raw string) *internal.Cooling {
	text, lower, ok := cellText(raw)
	if !ok {
		return nil
	}
	return &internal.Cooling{
		Raw:            text,
		HasFan:         has("fan")(lower) && !has("fanless", "no fan")(lower),
		HasHeatsink:    has("heatsink", "heat sink", "heat-sink")(lower),
		HasHeatpipe:    has("heatpipe", "heat pipe", "heat-pipe", "vapor chamber")(lower),
		HasVentilation: has("vent", "airflow")(lower),
	}
}

func ParseSensors(raw string) *internal.Sensors {
	text, lower, ok := cellText(raw)
	if !ok {
		return nil
	}
	return &internal.Sensors{
		Raw:              text,
		HasAccelerometer: has("accelerometer", "accel")(lower),
		HasGyroscope:     has("gyro")(lower),
		HasCompass:       has("compass", "magnetometer")(lower),
		HasCamera:        has("camera")(lower),
		HasMicrophone:    either(has("microphone"), hasWord("mic"))(lower),
		HasFingerprint:   has("fingerprint")(lower),
		HasTouchpad:      has("touchpad", "trackpad")(lower),
	}
}

// ParseRumble is nil for an empty cell and false when the cell names no motor.
func ParseRumble(raw string) *bool {
	_, lower, ok := cellText(raw)
	if !ok {
		return nil
	}
	v := !negative(lower) && either(hasWord("yes", "y"), has("rumble", "vibration", "haptic", "motor"))(lower)
	return &v
}

func ParseVideoOutput(raw string) *internal.VideoOutput {
	text, lower, ok := cellText(raw)
	if !ok {
		return nil
	}
	return &internal.VideoOutput{
		Raw:            text,
		HasHDMI:        has("hdmi")(lower),
		HasDisplayPort: either(has("displayport", "display port"), hasWord("dp"))(lower),
		HasUSBC:        mentionsUSBC(lower),
		HasWireless:    has("wireless", "miracast", "chromecast", "airplay", "cast")(lower),
	}
}

func ParseAudioOutput(raw string) *internal.AudioOutput {
	text, lower, ok := cellText(raw)
	if !ok {
		return nil
	}
	return &internal.AudioOutput{
		Raw:               text,
		HasHeadphoneJack:  has("3.5", "jack", "headphone")(lower),
		HasUSBC:           mentionsUSBC(lower),
		HasBluetoothAudio: mentionsBluetooth(lower),
	}
}

func ParseSpeaker(raw string) *internal.Speaker {
	text, lower, ok := cellText(raw)
	if !ok {
		return nil
	}
	kind := speakerLadder.classifyOr(lower, "other")
	return &internal.Speaker{Raw: text, Type: &kind}
}

func ParseShellMaterial(raw string) *internal.ShellMaterial {
	text, lower, ok := cellText(raw)
	if !ok {
		return nil
	}
	return &internal.ShellMaterial{
		Raw:         text,
		IsPlastic:   either(has("plastic", "polycarbonate"), hasWord("abs", "pc"))(lower),
		IsMetal:     has("metal", "steel", "alloy")(lower),
		IsAluminum:  either(has("aluminum", "aluminium"), hasWord("alu"))(lower),
		IsMagnesium: has("magnesium")(lower),
	}
}
