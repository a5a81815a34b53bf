package models

// CategoryID identifies one entry of the closed category catalog.
type CategoryID string

const (
	CategoryComputer CategoryID = "computer"
	CategoryMonitor  CategoryID = "monitor"
	CategoryPrinter  CategoryID = "printer"
	CategorySpeakers CategoryID = "speakers"
	CategoryHeadset  CategoryID = "headset"
	CategoryPhone    CategoryID = "phone"
	CategoryNetwork  CategoryID = "network"
	CategoryWebcam   CategoryID = "webcam"
	CategoryUPS      CategoryID = "ups"
	CategoryTablet   CategoryID = "tablet"
	CategoryOther    CategoryID = "other"
)

// Category is one catalog entry: which specification keys the category
// requires and allows, plus display metadata for the UI.
type Category struct {
	ID            CategoryID `json:"value"`
	Label         string     `json:"label"`
	Icon          string     `json:"icon"`
	Color         string     `json:"color"`
	RequiredSpecs []string   `json:"required_specs"`
	AllowedSpecs  []string   `json:"allowed_specs"`
}

// HasSpecifications reports whether the category demands any spec keys.
func (c Category) HasSpecifications() bool {
	return len(c.RequiredSpecs) > 0
}

// BadgeClass returns the bootstrap badge class used by the UI.
func (c Category) BadgeClass() string {
	return "badge bg-" + c.Color
}

// AllowsSpec reports whether key may be stored for this category.
func (c Category) AllowsSpec(key string) bool {
	for _, allowed := range c.AllowedSpecs {
		if key == allowed {
			return true
		}
	}
	return false
}

// categories is the catalog itself. The set is closed; required keys are
// always a subset of allowed keys.
var categories = []Category{
	{
		ID:            CategoryComputer,
		Label:         "Computer",
		Icon:          "bi-cpu",
		Color:         "primary",
		RequiredSpecs: []string{"processor", "ram", "storage"},
		AllowedSpecs:  []string{"processor", "ram", "storage", "graphics", "motherboard", "psu", "os", "other"},
	},
	{
		ID:            CategoryMonitor,
		Label:         "Monitor",
		Icon:          "bi-display",
		Color:         "info",
		RequiredSpecs: []string{"size"},
		AllowedSpecs:  []string{"size", "ports", "other"},
	},
	{
		ID:            CategoryPrinter,
		Label:         "Printer",
		Icon:          "bi-printer",
		Color:         "warning",
		RequiredSpecs: []string{"type"},
		AllowedSpecs:  []string{"type", "paper_format", "duplex", "network", "other"},
	},
	{
		ID:    CategorySpeakers,
		Label: "Speakers",
		Icon:  "bi-speaker",
		Color: "success",
	},
	{
		ID:    CategoryHeadset,
		Label: "Headset",
		Icon:  "bi-headset",
		Color: "purple",
	},
	{
		ID:    CategoryPhone,
		Label: "Phone",
		Icon:  "bi-phone",
		Color: "telegram",
	},
	{
		ID:            CategoryNetwork,
		Label:         "Network equipment",
		Icon:          "bi-router",
		Color:         "indigo",
		RequiredSpecs: []string{"type"},
		AllowedSpecs:  []string{"type", "ports", "speed", "wifi_standard", "poe", "management", "other"},
	},
	{
		ID:           CategoryWebcam,
		Label:        "Webcam",
		Icon:         "bi-camera-video",
		Color:        "pink",
		AllowedSpecs: []string{"microphone", "connection", "other"},
	},
	{
		ID:           CategoryUPS,
		Label:        "UPS",
		Icon:         "bi-lightning-charge",
		Color:        "orange",
		AllowedSpecs: []string{"capacity", "runtime", "output_power", "battery_type", "management", "other"},
	},
	{
		ID:    CategoryTablet,
		Label: "Tablet",
		Icon:  "bi-tablet",
		Color: "teal",
		AllowedSpecs: []string{
			"screen_size", "operating_system", "storage", "ram", "processor",
			"camera", "battery_capacity", "connectivity", "other",
		},
	},
	{
		ID:    CategoryOther,
		Label: "Other",
		Icon:  "bi-box",
		Color: "dark",
	},
}

var categoryIndex = func() map[CategoryID]Category {
	index := make(map[CategoryID]Category, len(categories))
	for _, c := range categories {
		index[c.ID] = c
	}
	return index
}()

// Categories returns the full catalog in display order.
func Categories() []Category {
	return categories
}

// CategoryByID looks up a catalog entry. ok is false for unknown identifiers.
func CategoryByID(id CategoryID) (Category, bool) {
	c, ok := categoryIndex[id]
	return c, ok
}

func (id CategoryID) Valid() bool {
	_, ok := categoryIndex[id]
	return ok
}

// specLabels maps every known specification key to its form label.
var specLabels = map[string]string{
	"processor":        "Processor",
	"ram":              "RAM",
	"storage":          "Storage",
	"graphics":         "Graphics card",
	"motherboard":      "Motherboard",
	"psu":              "Power supply",
	"os":               "Operating system",
	"other":            "Other",
	"size":             "Size",
	"ports":            "Ports",
	"type":             "Type",
	"paper_format":     "Paper format",
	"duplex":           "Duplex",
	"network":          "Network",
	"speed":            "Speed",
	"wifi_standard":    "Wi-Fi standard",
	"poe":              "PoE",
	"management":       "Management",
	"microphone":       "Microphone",
	"connection":       "Connection",
	"capacity":         "Capacity",
	"runtime":          "Runtime",
	"output_power":     "Output power",
	"battery_type":     "Battery type",
	"screen_size":      "Screen size",
	"operating_system": "Operating system",
	"camera":           "Camera",
	"battery_capacity": "Battery capacity",
	"connectivity":     "Connectivity",
}

// SpecLabels returns the label for each allowed key of the category.
func (c Category) SpecLabels() map[string]string {
	labels := make(map[string]string, len(c.AllowedSpecs))
	for _, key := range c.AllowedSpecs {
		if label, ok := specLabels[key]; ok {
			labels[key] = label
		} else {
			labels[key] = key
		}
	}
	return labels
}
