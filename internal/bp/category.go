package bp

// Category is the clinical classification of a blood pressure reading,
// following the ACC/AHA thresholds.
type Category int

const (
	Uncategorized Category = iota
	Normal
	Elevated
	Stage1
	Stage2
)

// Classify returns the category a systolic/diastolic pair falls into.
// Stages are checked from worst to best so that whichever of the two
// values crosses into a higher stage decides the result. Out of range
// values are not clamped; validation is the form's responsibility.
func Classify(systolic, diastolic int) Category {
	switch {
	case systolic >= 140 || diastolic >= 90:
		return Stage2
	case (systolic >= 130 && systolic < 140) || (diastolic >= 80 && diastolic < 90):
		return Stage1
	case systolic >= 120 && systolic < 130 && diastolic < 80:
		return Elevated
	case systolic < 120 && diastolic < 80:
		return Normal
	}
	return Uncategorized
}

func (c Category) String() string {
	switch c {
	case Normal:
		return "Normal"
	case Elevated:
		return "Elevated"
	case Stage1:
		return "Hypertension Stage 1"
	case Stage2:
		return "Hypertension Stage 2"
	}
	return "Uncategorized"
}

// Slug returns the category identifier used by CSS classes and
// translation keys.
func (c Category) Slug() string {
	switch c {
	case Normal:
		return "normal"
	case Elevated:
		return "elevated"
	case Stage1:
		return "stage-1"
	case Stage2:
		return "stage-2"
	}
	return "uncategorized"
}
