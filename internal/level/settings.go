package level

// Settings is the level's settings block. The editor does not interpret it;
// it is written out as given, in this field order.
type Settings struct {
	Version                 int        `json:"version" mapstructure:"version"`
	Artist                  string     `json:"artist" mapstructure:"artist"`
	SpecialArtistType       string     `json:"specialArtistType" mapstructure:"specialArtistType"`
	ArtistPermission        string     `json:"artistPermission" mapstructure:"artistPermission"`
	Song                    string     `json:"song" mapstructure:"song"`
	Author                  string     `json:"author" mapstructure:"author"`
	SeparateCountdownTime   string     `json:"separateCountdownTime" mapstructure:"separateCountdownTime"`
	PreviewImage            string     `json:"previewImage" mapstructure:"previewImage"`
	PreviewIcon             string     `json:"previewIcon" mapstructure:"previewIcon"`
	PreviewIconColor        string     `json:"previewIconColor" mapstructure:"previewIconColor"`
	PreviewSongStart        float64    `json:"previewSongStart" mapstructure:"previewSongStart"`
	PreviewSongDuration     float64    `json:"previewSongDuration" mapstructure:"previewSongDuration"`
	SeizureWarning          string     `json:"seizureWarning" mapstructure:"seizureWarning"`
	LevelDesc               string     `json:"levelDesc" mapstructure:"levelDesc"`
	LevelTags               string     `json:"levelTags" mapstructure:"levelTags"`
	ArtistLinks             string     `json:"artistLinks" mapstructure:"artistLinks"`
	Difficulty              int        `json:"difficulty" mapstructure:"difficulty"`
	SongFilename            string     `json:"songFilename" mapstructure:"songFilename"`
	BPM                     float64    `json:"bpm" mapstructure:"bpm"`
	Volume                  int        `json:"volume" mapstructure:"volume"`
	Offset                  int        `json:"offset" mapstructure:"offset"`
	Pitch                   int        `json:"pitch" mapstructure:"pitch"`
	Hitsound                string     `json:"hitsound" mapstructure:"hitsound"`
	HitsoundVolume          int        `json:"hitsoundVolume" mapstructure:"hitsoundVolume"`
	CountdownTicks          int        `json:"countdownTicks" mapstructure:"countdownTicks"`
	TrackColorType          string     `json:"trackColorType" mapstructure:"trackColorType"`
	TrackColor              string     `json:"trackColor" mapstructure:"trackColor"`
	SecondaryTrackColor     string     `json:"secondaryTrackColor" mapstructure:"secondaryTrackColor"`
	TrackColorAnimDuration  float64    `json:"trackColorAnimDuration" mapstructure:"trackColorAnimDuration"`
	TrackColorPulse         string     `json:"trackColorPulse" mapstructure:"trackColorPulse"`
	TrackPulseLength        int        `json:"trackPulseLength" mapstructure:"trackPulseLength"`
	TrackStyle              string     `json:"trackStyle" mapstructure:"trackStyle"`
	TrackAnimation          string     `json:"trackAnimation" mapstructure:"trackAnimation"`
	BeatsAhead              float64    `json:"beatsAhead" mapstructure:"beatsAhead"`
	TrackDisappearAnimation string     `json:"trackDisappearAnimation" mapstructure:"trackDisappearAnimation"`
	BeatsBehind             float64    `json:"beatsBehind" mapstructure:"beatsBehind"`
	BackgroundColor         string     `json:"backgroundColor" mapstructure:"backgroundColor"`
	ShowDefaultBGIfNoImage  string     `json:"showDefaultBGIfNoImage" mapstructure:"showDefaultBGIfNoImage"`
	BGImage                 string     `json:"bgImage" mapstructure:"bgImage"`
	BGImageColor            string     `json:"bgImageColor" mapstructure:"bgImageColor"`
	Parallax                [2]float64 `json:"parallax" mapstructure:"parallax"`
	BGDisplayMode           string     `json:"bgDisplayMode" mapstructure:"bgDisplayMode"`
	LockRot                 string     `json:"lockRot" mapstructure:"lockRot"`
	LoopBG                  string     `json:"loopBG" mapstructure:"loopBG"`
	UnscaledSize            int        `json:"unscaledSize" mapstructure:"unscaledSize"`
	RelativeTo              string     `json:"relativeTo" mapstructure:"relativeTo"`
	Position                [2]float64 `json:"position" mapstructure:"position"`
	Rotation                float64    `json:"rotation" mapstructure:"rotation"`
	Zoom                    float64    `json:"zoom" mapstructure:"zoom"`
	BGVideo                 string     `json:"bgVideo" mapstructure:"bgVideo"`
	LoopVideo               string     `json:"loopVideo" mapstructure:"loopVideo"`
	VidOffset               int        `json:"vidOffset" mapstructure:"vidOffset"`
	FloorIconOutlines       string     `json:"floorIconOutlines" mapstructure:"floorIconOutlines"`
	StickToFloors           string     `json:"stickToFloors" mapstructure:"stickToFloors"`
	PlanetEase              string     `json:"planetEase" mapstructure:"planetEase"`
	PlanetEaseParts         int        `json:"planetEaseParts" mapstructure:"planetEaseParts"`
	LegacyFlash             bool       `json:"legacyFlash" mapstructure:"legacyFlash"`
	LegacySpriteTiles       bool       `json:"legacySpriteTiles" mapstructure:"legacySpriteTiles"`
}

// DefaultSettings returns the settings every exported level starts from.
func DefaultSettings() Settings {
	return Settings{
		Version:                 5,
		Artist:                  "작곡가",
		SpecialArtistType:       "None",
		Song:                    "곡",
		Author:                  "만든이",
		SeparateCountdownTime:   "Enabled",
		PreviewIconColor:        "003f52",
		PreviewSongStart:        0,
		PreviewSongDuration:     10,
		SeizureWarning:          "Disabled",
		LevelDesc:               "레벨에 대해 말해보세요!",
		Difficulty:              1,
		BPM:                     100,
		Volume:                  100,
		Pitch:                   100,
		Hitsound:                "Kick",
		HitsoundVolume:          100,
		CountdownTicks:          4,
		TrackColorType:          "Single",
		TrackColor:              "debb7b",
		SecondaryTrackColor:     "ffffff",
		TrackColorAnimDuration:  2,
		TrackColorPulse:         "None",
		TrackPulseLength:        10,
		TrackStyle:              "Standard",
		TrackAnimation:          "None",
		BeatsAhead:              3,
		TrackDisappearAnimation: "None",
		BeatsBehind:             4,
		BackgroundColor:         "000000",
		ShowDefaultBGIfNoImage:  "Enabled",
		BGImageColor:            "ffffff",
		Parallax:                [2]float64{100, 100},
		BGDisplayMode:           "FitToScreen",
		LockRot:                 "Disabled",
		LoopBG:                  "Disabled",
		UnscaledSize:            100,
		RelativeTo:              "Player",
		Zoom:                    100,
		LoopVideo:               "Disabled",
		FloorIconOutlines:       "Disabled",
		StickToFloors:           "Disabled",
		PlanetEase:              "Linear",
		PlanetEaseParts:         1,
	}
}
