package models

// ContentBundle is the full themed copy for one platform persona. The
// resolver guarantees a complete bundle for every selectable platform;
// pages never fall through to the other persona's content.
type ContentBundle struct {
	Platform       Platform        `json:"platform"`
	Theme          Theme           `json:"theme"`
	Hero           HeroContent     `json:"hero"`
	About          AboutContent    `json:"about"`
	FAQs           []FAQ           `json:"faqs"`
	ProjectOptions []ProjectOption `json:"project_options"`
	Features       []FeatureOption `json:"features"`
	Timelines      []TimelineSlot  `json:"timelines"`
}

// Theme holds the visual accent tokens for a persona.
type Theme struct {
	Accent      string `json:"accent" example:"emerald"`
	AccentHex   string `json:"accent_hex" example:"#10b981"`
	GradientTo  string `json:"gradient_to" example:"violet"`
	BadgeColor  string `json:"badge_color" example:"green"`
	ButtonColor string `json:"button_color" example:"indigo"`
}

type HeroContent struct {
	Badge          string `json:"badge"`
	TitleStart     string `json:"title_start"`
	TitleHighlight string `json:"title_highlight"`
	Description    string `json:"description"`
	StatLabel      string `json:"stat_label"`
	CTA            string `json:"cta"`
}

type AboutContent struct {
	Specialization string            `json:"specialization"`
	ROILabel       string            `json:"roi_label"`
	ROIValue       string            `json:"roi_value"`
	TitleStart     string            `json:"title_start"`
	TitleHighlight string            `json:"title_highlight"`
	Intro          string            `json:"intro"`
	Bio            []string          `json:"bio"`
	Recognitions   []Recognition     `json:"recognitions"`
	Experience     []ExperienceEntry `json:"experience"`
}

type Recognition struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ExperienceEntry struct {
	Year    string `json:"year"`
	Title   string `json:"title"`
	Company string `json:"company"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ProjectOption is a selectable project type on Step 1 of the intake
// wizard. These lists are the authoritative option source: the wizard
// validates against them and resolves labels from them.
type ProjectOption struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Icon        string `json:"icon"`
}

// FeatureOption is a toggleable checklist entry on Step 3.
type FeatureOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// TimelineSlot is a selectable delivery timeframe on Step 2.
type TimelineSlot struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
