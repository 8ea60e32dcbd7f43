package internal

type DeviceType string

const (
	DeviceHandheld DeviceType = "handheld"
	DeviceOEM      DeviceType = "oem"
)

type TagType string

const (
	TagBrand        TagType = "brand"
	TagOS           TagType = "os"
	TagPrice        TagType = "price"
	TagFormFactor   TagType = "formFactor"
	TagScreenType   TagType = "screenType"
	TagReleaseDate  TagType = "releaseDate"
	TagPersonalPick TagType = "personalPick"
	TagDeviceType   TagType = "deviceType"
)

type PriceCategory string

const (
	PriceUnknown PriceCategory = "unknown"
	PriceLow     PriceCategory = "low"
	PriceMid     PriceCategory = "mid"
	PriceHigh    PriceCategory = "high"
)

type NameTriple struct {
	Raw        string `json:"raw"`
	Sanitized  string `json:"sanitized"`
	Normalized string `json:"normalized"`
}

type Tag struct {
	Name string  `json:"name"`
	Slug string  `json:"slug"`
	Type TagType `json:"type"`
}

type Link struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

type Performance struct {
	Tier             *string  `json:"tier"`
	Rating           *float64 `json:"rating"`
	NormalizedRating *float64 `json:"normalizedRating"`
	MaxEmulation     *string  `json:"maxEmulation"`
	EmulationLimit   *string  `json:"emulationLimit"`
}

type SystemRating struct {
	System       string `json:"system"`
	RatingMark   string `json:"ratingMark"`
	RatingNumber *int   `json:"ratingNumber"`
}

type Released struct {
	Raw      string `json:"raw"`
	Year     *int   `json:"year"`
	Upcoming bool   `json:"upcoming"`
}

type OS struct {
	Raw  string   `json:"raw"`
	List []string `json:"list"`
}

type ClockSpeed struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Unit string  `json:"unit"`
}

type CPU struct {
	Name         *string     `json:"name"`
	Cores        *int        `json:"cores"`
	Threads      *int        `json:"threads"`
	Frequency    *ClockSpeed `json:"frequency"`
	Architecture *string     `json:"architecture"`
}

type GPU struct {
	Name      *string     `json:"name"`
	Cores     *string     `json:"cores"`
	Frequency *ClockSpeed `json:"frequency"`
}

type RAM struct {
	Raw  string   `json:"raw"`
	Size *float64 `json:"size"`
	Unit *string  `json:"unit"`
	Type *string  `json:"type"`
}

type ScreenType struct {
	Type          *string `json:"type"`
	IsTouchscreen bool    `json:"isTouchscreen"`
	IsPenCapable  bool    `json:"isPenCapable"`
}

type Resolution struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type Screen struct {
	Size        *float64     `json:"size"`
	Type        *ScreenType  `json:"type"`
	Resolution  []Resolution `json:"resolution"`
	PPI         *float64     `json:"ppi"`
	AspectRatio *string      `json:"aspectRatio"`
	Lens        *string      `json:"lens"`
}

type Battery struct {
	Raw      string   `json:"raw"`
	Capacity *float64 `json:"capacity"`
	Unit     *string  `json:"unit"`
}

type ChargePort struct {
	Raw  string  `json:"raw"`
	Type *string `json:"type"`
}

type Cooling struct {
	Raw            string `json:"raw"`
	HasFan         bool   `json:"hasFan"`
	HasHeatsink    bool   `json:"hasHeatsink"`
	HasHeatpipe    bool   `json:"hasHeatpipe"`
	HasVentilation bool   `json:"hasVentilation"`
}

type DPad struct {
	Raw  string  `json:"raw"`
	Type *string `json:"type"`
}

type Analogs struct {
	Raw          string `json:"raw"`
	IsDual       bool   `json:"isDual"`
	IsHallSensor bool   `json:"isHallSensor"`
	IsSlidePad   bool   `json:"isSlidePad"`
	HasL3R3      bool   `json:"hasL3R3"`
}

type ShoulderButtons struct {
	Raw              string `json:"raw"`
	HasL1            bool   `json:"hasL1"`
	HasR1            bool   `json:"hasR1"`
	HasL2            bool   `json:"hasL2"`
	HasR2            bool   `json:"hasR2"`
	HasL3            bool   `json:"hasL3"`
	HasR3            bool   `json:"hasR3"`
	IsAnalogTriggers bool   `json:"isAnalogTriggers"`
}

type Controls struct {
	DPad              *DPad            `json:"dPad"`
	Analogs           *Analogs         `json:"analogs"`
	FaceButtons       []string         `json:"faceButtons"`
	ShoulderButtons   *ShoulderButtons `json:"shoulderButtons"`
	ExtraButtons      []string         `json:"extraButtons"`
	VolumeControl     *string          `json:"volumeControl"`
	BrightnessControl *string          `json:"brightnessControl"`
	PowerControl      *string          `json:"powerControl"`
}

type Connectivity struct {
	Raw          string `json:"raw"`
	HasWifi      bool   `json:"hasWifi"`
	HasBluetooth bool   `json:"hasBluetooth"`
	HasNFC       bool   `json:"hasNfc"`
	HasCellular  bool   `json:"hasCellular"`
	HasEthernet  bool   `json:"hasEthernet"`
}

type VideoOutput struct {
	Raw            string `json:"raw"`
	HasHDMI        bool   `json:"hasHdmi"`
	HasDisplayPort bool   `json:"hasDisplayPort"`
	HasUSBC        bool   `json:"hasUsbc"`
	HasWireless    bool   `json:"hasWireless"`
}

type AudioOutput struct {
	Raw               string `json:"raw"`
	HasHeadphoneJack  bool   `json:"hasHeadphoneJack"`
	HasUSBC           bool   `json:"hasUsbc"`
	HasBluetoothAudio bool   `json:"hasBluetoothAudio"`
}

type Speaker struct {
	Raw  string  `json:"raw"`
	Type *string `json:"type"`
}

type Outputs struct {
	Video   *VideoOutput `json:"video"`
	Audio   *AudioOutput `json:"audio"`
	Speaker *Speaker     `json:"speaker"`
}

type Sensors struct {
	Raw              string `json:"raw"`
	HasAccelerometer bool   `json:"hasAccelerometer"`
	HasGyroscope     bool   `json:"hasGyroscope"`
	HasCompass       bool   `json:"hasCompass"`
	HasCamera        bool   `json:"hasCamera"`
	HasMicrophone    bool   `json:"hasMicrophone"`
	HasFingerprint   bool   `json:"hasFingerprint"`
	HasTouchpad      bool   `json:"hasTouchpad"`
}

type Pricing struct {
	Raw          string        `json:"raw"`
	Min          *float64      `json:"min"`
	Max          *float64      `json:"max"`
	Average      *float64      `json:"average"`
	Currency     string        `json:"currency,omitempty"`
	Category     PriceCategory `json:"category,omitempty"`
	Discontinued bool          `json:"discontinued"`
}

type Dimensions struct {
	Raw    string   `json:"raw"`
	Length *float64 `json:"length"`
	Width  *float64 `json:"width"`
	Height *float64 `json:"height"`
}

type ShellMaterial struct {
	Raw         string `json:"raw"`
	IsPlastic   bool   `json:"isPlastic"`
	IsMetal     bool   `json:"isMetal"`
	IsAluminum  bool   `json:"isAluminum"`
	IsMagnesium bool   `json:"isMagnesium"`
}

type Reviews struct {
	Written []Link `json:"written"`
	Video   []Link `json:"video"`
}

type Device struct {
	ID         string     `json:"id"`
	Index      int        `json:"index"`
	Name       NameTriple `json:"name"`
	Brand      NameTriple `json:"brand"`
	DeviceType DeviceType `json:"deviceType"`
	Tags       []Tag      `json:"tags"`

	TotalRating   float64        `json:"totalRating"`
	Performance   Performance    `json:"performance"`
	SystemRatings []SystemRating `json:"systemRatings"`

	Image      *string   `json:"image"`
	Released   *Released `json:"released"`
	FormFactor *string   `json:"formFactor"`
	OS         *OS       `json:"os"`

	CPUs          []CPU          `json:"cpus"`
	GPUs          []GPU          `json:"gpus"`
	RAM           *RAM           `json:"ram"`
	Screen        *Screen        `json:"screen"`
	Battery       *Battery       `json:"battery"`
	ChargePort    *ChargePort    `json:"chargePort"`
	Storage       *string        `json:"storage"`
	Cooling       *Cooling       `json:"cooling"`
	Controls      Controls       `json:"controls"`
	Connectivity  *Connectivity  `json:"connectivity"`
	Outputs       Outputs        `json:"outputs"`
	Sensors       *Sensors       `json:"sensors"`
	Rumble        *bool          `json:"rumble"`
	Pricing       *Pricing       `json:"pricing"`
	Dimensions    *Dimensions    `json:"dimensions"`
	Weight        *float64       `json:"weight"`
	ShellMaterial *ShellMaterial `json:"shellMaterial"`
	Colors        []string       `json:"colors"`

	VendorLinks   []Link  `json:"vendorLinks"`
	Reviews       Reviews `json:"reviews"`
	HackingGuides []Link  `json:"hackingGuides"`
}

type BuildStats struct {
	Rows          int `json:"rows"`
	Kept          int `json:"kept"`
	UnknownBrand  int `json:"unknownBrand"`
	EmptyID       int `json:"emptyId"`
	DuplicateID   int `json:"duplicateId"`
	HeaderDrifted int `json:"headerDrifted"`
}

type SyncResult struct {
	RunID   string `json:"runId"`
	Created int    `json:"created"`
	Updated int    `json:"updated"`
	Skipped int    `json:"skipped"`
	Removed int    `json:"removed"`
}
