// Package taxonomy holds the closed skill and cause vocabularies that every
// search filter set is restricted to.
package taxonomy

// Skill is a single professional competency an impact agent can offer
type Skill struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SkillCategory groups related skills
type SkillCategory struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Skills []Skill `json:"skills"`
}

// Category identifiers
const (
	CategoryDigitalMarketing = "digital-marketing"
	CategoryFundraising      = "fundraising"
	CategoryWebsite          = "website"
	CategoryFinance          = "finance"
	CategoryContentCreation  = "content-creation"
	CategoryCommunication    = "communication"
	CategoryPlanningSupport  = "planning-support"
)

var skillCategories = []SkillCategory{
	{
		ID:   CategoryDigitalMarketing,
		Name: "Digital Marketing",
		Skills: []Skill{
			{ID: "community-management", Name: "Community Management"},
			{ID: "email-marketing", Name: "Email Marketing / Automation"},
			{ID: "social-media-ads", Name: "Social Media Advertising"},
			{ID: "ppc-google-ads", Name: "PPC / Google Ads"},
			{ID: "seo-content", Name: "SEO / Content Marketing"},
			{ID: "social-media-strategy", Name: "Social Media Strategy"},
			{ID: "whatsapp-marketing", Name: "WhatsApp Marketing"},
			{ID: "marketing-strategy", Name: "Marketing Strategy"},
		},
	},
	{
		ID:   CategoryFundraising,
		Name: "Fundraising Assistance",
		Skills: []Skill{
			{ID: "grant-writing", Name: "Grant Writing"},
			{ID: "grant-research", Name: "Grant Research"},
			{ID: "corporate-sponsorship", Name: "Corporate Sponsorship"},
			{ID: "major-gift-strategy", Name: "Major Gift Strategy"},
			{ID: "peer-to-peer-campaigns", Name: "Peer-to-Peer Campaigns"},
			{ID: "fundraising-pitch-deck", Name: "Fundraising Pitch Deck"},
		},
	},
	{
		ID:   CategoryWebsite,
		Name: "Website & App Development",
		Skills: []Skill{
			{ID: "wordpress-development", Name: "WordPress Development"},
			{ID: "ux-ui", Name: "UX / UI Design"},
			{ID: "website-security", Name: "Website Security"},
			{ID: "cms-maintenance", Name: "CMS Maintenance"},
			{ID: "website-redesign", Name: "Website Redesign"},
			{ID: "landing-page-optimization", Name: "Landing Page Optimization"},
			{ID: "web-development", Name: "Web Development"},
			{ID: "mobile-app-development", Name: "Mobile App Development"},
		},
	},
	{
		ID:   CategoryFinance,
		Name: "Finance & Accounting",
		Skills: []Skill{
			{ID: "bookkeeping", Name: "Bookkeeping"},
			{ID: "budgeting-forecasting", Name: "Budgeting & Forecasting"},
			{ID: "payroll-processing", Name: "Payroll Processing"},
			{ID: "financial-reporting", Name: "Financial Reporting"},
			{ID: "accounting-software", Name: "Accounting Software (Tally, QuickBooks, Zoho)"},
			{ID: "audit-compliance", Name: "Audit & Compliance"},
		},
	},
	{
		ID:   CategoryContentCreation,
		Name: "Content Creation & Design",
		Skills: []Skill{
			{ID: "graphic-design", Name: "Graphic Design"},
			{ID: "photography", Name: "Photography"},
			{ID: "video-editing", Name: "Video Editing"},
			{ID: "motion-graphics", Name: "Motion Graphics / Animation"},
			{ID: "illustration", Name: "Illustration"},
			{ID: "presentation-design", Name: "Presentation Design"},
			{ID: "annual-report-design", Name: "Annual Report Design"},
			{ID: "content-writing", Name: "Content Writing"},
			{ID: "copywriting", Name: "Copywriting"},
		},
	},
	{
		ID:   CategoryCommunication,
		Name: "Communication & Writing",
		Skills: []Skill{
			{ID: "press-release", Name: "Press Release Writing"},
			{ID: "public-relations", Name: "Public Relations"},
			{ID: "newsletter-writing", Name: "Newsletter Writing"},
			{ID: "storytelling", Name: "Impact Storytelling"},
			{ID: "translation", Name: "Translation & Localization"},
			{ID: "proofreading", Name: "Proofreading & Editing"},
		},
	},
	{
		ID:   CategoryPlanningSupport,
		Name: "Planning & Operations",
		Skills: []Skill{
			{ID: "volunteer-recruitment", Name: "Volunteer Recruitment"},
			{ID: "event-planning", Name: "Event Planning"},
			{ID: "project-management", Name: "Project Management"},
			{ID: "strategic-planning", Name: "Strategic Planning"},
			{ID: "hr-recruitment", Name: "HR & Recruitment"},
			{ID: "legal-advice", Name: "Legal Advice"},
			{ID: "data-analysis", Name: "Data Analysis"},
			{ID: "impact-measurement", Name: "Impact Measurement / M&E"},
			{ID: "training-facilitation", Name: "Training & Facilitation"},
		},
	},
}

// skillIndex maps skill ID -> category ID, built once at init
var skillIndex = func() map[string]string {
	idx := make(map[string]string)
	for _, cat := range skillCategories {
		for _, s := range cat.Skills {
			idx[s.ID] = cat.ID
		}
	}
	return idx
}()

// Categories returns a deep copy of the skill taxonomy in declaration order
func Categories() []SkillCategory {
	out := make([]SkillCategory, len(skillCategories))
	for i, cat := range skillCategories {
		out[i] = SkillCategory{
			ID:     cat.ID,
			Name:   cat.Name,
			Skills: append([]Skill(nil), cat.Skills...),
		}
	}
	return out
}

// SkillIDs returns every skill identifier in taxonomy order
func SkillIDs() []string {
	ids := make([]string, 0, len(skillIndex))
	for _, cat := range skillCategories {
		for _, s := range cat.Skills {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

// IsSkill reports whether id is a member of the skill vocabulary
func IsSkill(id string) bool {
	_, ok := skillIndex[id]
	return ok
}

// CategoryOf returns the category ID a skill belongs to, or "" if unknown
func CategoryOf(skillID string) string {
	return skillIndex[skillID]
}

// SkillsInCategory returns the skill IDs of one category, or nil if the category is unknown
func SkillsInCategory(categoryID string) []string {
	for _, cat := range skillCategories {
		if cat.ID != categoryID {
			continue
		}
		ids := make([]string, len(cat.Skills))
		for i, s := range cat.Skills {
			ids[i] = s.ID
		}
		return ids
	}
	return nil
}
