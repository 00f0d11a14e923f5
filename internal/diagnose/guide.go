package diagnose

// Category keys the repair knowledge base.
type Category string

const (
	CategoryBoot        Category = "BOOT"
	CategoryOptimal     Category = "OPTIMAL"
	CategoryBearingFail Category = "BEARING_FAIL"
	CategoryUnbalance   Category = "UNBALANCE"
	CategoryHighVibe    Category = "HIGH_VIBE"
)

// repairGuide is the fixed expert knowledge base. Recommendation text
// is part of the external contract; tests compare against it verbatim.
var repairGuide = map[Category]string{
	CategoryBoot:        "System initializing... Sensor calibration in progress.",
	CategoryOptimal:     "System operating within normal parameters. Efficiency: 98%.",
	CategoryBearingFail: "DIAGNOSIS: Inner Race Bearing Spalling. REPAIR: Replace Drive-End (DE) bearing. Inspect lubrication.",
	CategoryUnbalance:   "DIAGNOSIS: Rotor Assembly Imbalance. REPAIR: Clean fan blades to remove debris. Check balance weights.",
	CategoryHighVibe:    "DIAGNOSIS: Loose Mechanical Mounting. REPAIR: Tighten foundation bolts. Check isolation pads.",
}

// Guidance returns the repair recommendation for a category.
func Guidance(category Category) string {
	return repairGuide[category]
}
