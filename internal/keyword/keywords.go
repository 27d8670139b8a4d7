package keyword

import "github.com/jonathan/impact-search/internal/taxonomy"

// rule maps a lower-case substring to the identifiers it implies
type rule struct {
	substr string
	ids    []string
}

// skillKeywords is checked in order; every matching rule contributes its skills
var skillKeywords = []rule{
	// Digital marketing
	{"marketing", taxonomy.SkillsInCategory(taxonomy.CategoryDigitalMarketing)},
	{"seo", []string{"seo-content"}},
	{"search engine", []string{"seo-content"}},
	{"social media", []string{"social-media-strategy", "social-media-ads", "community-management"}},
	{"instagram", []string{"social-media-strategy", "social-media-ads"}},
	{"facebook", []string{"social-media-strategy", "social-media-ads"}},
	{"linkedin", []string{"social-media-strategy"}},
	{"community manag", []string{"community-management"}},
	{"email", []string{"email-marketing"}},
	{"mailchimp", []string{"email-marketing"}},
	{"google ads", []string{"ppc-google-ads"}},
	{"ppc", []string{"ppc-google-ads"}},
	{"advertis", []string{"social-media-ads", "ppc-google-ads"}},
	{"whatsapp", []string{"whatsapp-marketing"}},

	// Fundraising
	{"fundrais", taxonomy.SkillsInCategory(taxonomy.CategoryFundraising)},
	{"grant", []string{"grant-writing", "grant-research"}},
	{"sponsor", []string{"corporate-sponsorship"}},
	{"csr", []string{"corporate-sponsorship"}},
	{"donor", []string{"major-gift-strategy", "peer-to-peer-campaigns"}},
	{"major gift", []string{"major-gift-strategy"}},
	{"crowdfund", []string{"peer-to-peer-campaigns"}},
	{"peer-to-peer", []string{"peer-to-peer-campaigns"}},
	{"pitch deck", []string{"fundraising-pitch-deck"}},

	// Website & app
	{"website", []string{"website-redesign", "ux-ui", "wordpress-development", "web-development"}},
	{"web design", []string{"website-redesign", "ux-ui", "wordpress-development"}},
	{"web develop", []string{"web-development", "wordpress-development"}},
	{"wordpress", []string{"wordpress-development", "cms-maintenance"}},
	{"redesign", []string{"website-redesign"}},
	{"ux", []string{"ux-ui"}},
	{"user experience", []string{"ux-ui"}},
	{"user interface", []string{"ux-ui"}},
	{"landing page", []string{"landing-page-optimization"}},
	{"cms", []string{"cms-maintenance"}},
	{"security", []string{"website-security"}},
	{"mobile app", []string{"mobile-app-development"}},
	{"android", []string{"mobile-app-development"}},
	{"ios app", []string{"mobile-app-development"}},
	{"developer", []string{"web-development"}},

	// Finance
	{"accounting", []string{"bookkeeping", "financial-reporting", "accounting-software"}},
	{"accountant", []string{"bookkeeping", "financial-reporting", "accounting-software"}},
	{"bookkeep", []string{"bookkeeping"}},
	{"budget", []string{"budgeting-forecasting"}},
	{"forecast", []string{"budgeting-forecasting"}},
	{"payroll", []string{"payroll-processing"}},
	{"financ", []string{"financial-reporting", "budgeting-forecasting"}},
	{"tally", []string{"accounting-software"}},
	{"quickbooks", []string{"accounting-software"}},
	{"audit", []string{"audit-compliance"}},
	{"compliance", []string{"audit-compliance"}},

	// Content creation & design
	{"design", []string{"graphic-design"}},
	{"logo", []string{"graphic-design"}},
	{"brand", []string{"graphic-design"}},
	{"photo", []string{"photography"}},
	{"video", []string{"video-editing"}},
	{"youtube", []string{"video-editing"}},
	{"animation", []string{"motion-graphics"}},
	{"motion graphic", []string{"motion-graphics"}},
	{"illustrat", []string{"illustration"}},
	{"presentation", []string{"presentation-design"}},
	{"powerpoint", []string{"presentation-design"}},
	{"annual report", []string{"annual-report-design", "financial-reporting"}},
	{"content", []string{"content-writing", "seo-content"}},
	{"writer", []string{"content-writing", "copywriting"}},
	{"writing", []string{"content-writing", "copywriting"}},
	{"blog", []string{"content-writing"}},
	{"copywrit", []string{"copywriting"}},

	// Communication
	{"press", []string{"press-release", "public-relations"}},
	{"public relations", []string{"public-relations"}},
	{"media relations", []string{"public-relations"}},
	{"newsletter", []string{"newsletter-writing", "email-marketing"}},
	{"story", []string{"storytelling"}},
	{"translat", []string{"translation"}},
	{"hindi", []string{"translation"}},
	{"proofread", []string{"proofreading"}},
	{"editor", []string{"proofreading"}},

	// Planning & operations
	{"volunteer manag", []string{"volunteer-recruitment"}},
	{"recruit", []string{"volunteer-recruitment", "hr-recruitment"}},
	{"event", []string{"event-planning"}},
	{"project manag", []string{"project-management"}},
	{"strateg", []string{"strategic-planning"}},
	{"human resource", []string{"hr-recruitment"}},
	{"legal", []string{"legal-advice"}},
	{"lawyer", []string{"legal-advice"}},
	{"data", []string{"data-analysis"}},
	{"analytics", []string{"data-analysis"}},
	{"excel", []string{"data-analysis"}},
	{"monitoring", []string{"impact-measurement"}},
	{"evaluation", []string{"impact-measurement"}},
	{"impact report", []string{"impact-measurement"}},
	{"training", []string{"training-facilitation"}},
	{"workshop", []string{"training-facilitation"}},
}

// causeKeywords is checked in order; every matching rule contributes its causes
var causeKeywords = []rule{
	{"education", []string{"education"}},
	{"school", []string{"education"}},
	{"teach", []string{"education"}},
	{"literacy", []string{"education"}},
	{"student", []string{"education"}},
	{"health", []string{"healthcare"}},
	{"medical", []string{"healthcare"}},
	{"hospital", []string{"healthcare"}},
	{"mental", []string{"mental-health"}},
	{"environment", []string{"environment"}},
	{"climate", []string{"environment"}},
	{"sustainab", []string{"environment"}},
	{"conservation", []string{"environment", "animal-welfare"}},
	{"animal", []string{"animal-welfare"}},
	{"wildlife", []string{"animal-welfare"}},
	{"stray", []string{"animal-welfare"}},
	{"poverty", []string{"poverty-alleviation"}},
	{"slum", []string{"poverty-alleviation"}},
	{"women", []string{"women-empowerment"}},
	{"gender", []string{"women-empowerment"}},
	{"girl", []string{"women-empowerment", "child-welfare"}},
	{"child", []string{"child-welfare"}},
	{"youth", []string{"child-welfare"}},
	{"orphan", []string{"child-welfare"}},
	{"elderly", []string{"senior-citizens"}},
	{"senior", []string{"senior-citizens"}},
	{"disab", []string{"disability-support"}},
	{"disaster", []string{"disaster-relief"}},
	{"relief", []string{"disaster-relief"}},
	{"flood", []string{"disaster-relief"}},
	{"human rights", []string{"human-rights"}},
	{"justice", []string{"human-rights"}},
	{"refugee", []string{"human-rights"}},
	{"art", []string{"arts-culture"}},
	{"culture", []string{"arts-culture"}},
	{"music", []string{"arts-culture"}},
	{"heritage", []string{"arts-culture"}},
	{"community", []string{"community-development"}},
	{"rural", []string{"community-development"}},
	{"water", []string{"water-sanitation"}},
	{"sanitation", []string{"water-sanitation"}},
	{"hunger", []string{"food-security"}},
	{"food", []string{"food-security"}},
	{"livelihood", []string{"livelihood"}},
	{"employment", []string{"livelihood"}},
	{"skilling", []string{"livelihood"}},
}
