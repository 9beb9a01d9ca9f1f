package models

// ============================================================
// Size Presets
// ============================================================

type SizePreset struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type PresetGroup struct {
	Group   string       `json:"group"`
	Presets []SizePreset `json:"presets"`
}

// SizePresets возвращает группы размеров холста в порядке отображения.
func SizePresets() []PresetGroup {
	return []PresetGroup{
		{Group: "Presentation", Presets: []SizePreset{
			{"Presentation 16:9 (1920×1080)", 1920, 1080},
			{"Slide 4:3 (1600×1200)", 1600, 1200},
			{"Slide 16:10 (1920×1200)", 1920, 1200},
			{"Slide Classic (1024×768)", 1024, 768},
			{"Presentation 2K (2560×1440)", 2560, 1440},
		}},
		{Group: "Social Media", Presets: []SizePreset{
			{"Instagram Post (1080×1350)", 1080, 1350},
			{"Instagram Story (1080×1920)", 1080, 1920},
			{"Facebook Post (1200×630)", 1200, 630},
			{"Twitter/X Header (1500×500)", 1500, 500},
			{"Pinterest Pin (1000×1500)", 1000, 1500},
			{"YouTube Thumbnail (1280×720)", 1280, 720},
			{"LinkedIn Post (1200×1200)", 1200, 1200},
		}},
		{Group: "Video", Presets: []SizePreset{
			{"Full HD 1080p (1920×1080)", 1920, 1080},
			{"4K UHD (3840×2160)", 3840, 2160},
			{"2K QHD (2560×1440)", 2560, 1440},
			{"HD 720p (1280×720)", 1280, 720},
			{"Vertical Video (1080×1920)", 1080, 1920},
			{"Square Video (1080×1080)", 1080, 1080},
		}},
		{Group: "Print (300 DPI)", Presets: []SizePreset{
			{`US Letter Portrait (8.5×11")`, 2550, 3300},
			{`US Letter Landscape (11×8.5")`, 3300, 2550},
			{"A4 Portrait (210×297mm)", 2480, 3508},
			{"A4 Landscape (297×210mm)", 3508, 2480},
			{`Business Card (3.5×2")`, 1050, 600},
			{`4×6" Photo`, 1200, 1800},
			{`8×10" Photo`, 2400, 3000},
			{`Poster 11×17"`, 3300, 5100},
		}},
		{Group: "Screen", Presets: []SizePreset{
			{"Desktop (1440×900)", 1440, 900},
			{"Desktop HD (1920×1080)", 1920, 1080},
			{"2K Monitor (2560×1440)", 2560, 1440},
			{"Laptop HD (1366×768)", 1366, 768},
			{`MacBook Pro 14"`, 1512, 982},
			{`MacBook Pro 16"`, 1728, 1117},
			{"iPad Portrait (768×1024)", 768, 1024},
			{"iPad Landscape (1024×768)", 1024, 768},
			{"iPhone SE (375×812)", 375, 812},
			{"iPhone 14 (390×844)", 390, 844},
			{"iPhone 15 Pro (393×852)", 393, 852},
			{"iPhone 15 Pro Max (430×932)", 430, 932},
		}},
	}
}
