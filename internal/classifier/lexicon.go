package classifier

// Static signal lexicons. Each category maps to an ordered phrase list;
// scan order within a category matters because the first hit wins in the
// title extractor. Loaded once, never mutated.

var titleSignals = map[Level][]string{
	LevelEntry: {
		"intern", "internship", "entry level", "entry-level",
		"junior", "associate", "coordinator", "assistant",
		"trainee", "apprentice", "graduate", "early career",
		"new grad", "jr.", "jr ", "student", "fellowship",
		"residency", "resident",
	},
	LevelMid: {
		"specialist", "analyst", "manager", "lead",
		"supervisor", "experienced", "mid-level", "mid level",
		"team lead", "project manager",
	},
	LevelSenior: {
		"senior", "sr.", "sr ", "director", "head of", "principal",
		"staff engineer", "staff developer", "architect",
		"senior manager", "engineering manager",
	},
	LevelExecutive: {
		"vice president", "chief executive", "chief technology", "chief financial",
		"chief operating", "chief marketing", "chief information",
		"executive director", "svp", "evp", "general manager",
		"founder", "co-founder", "managing director",
	},
}

// Short executive abbreviations collide with substrings of ordinary words
// ("vp" in "mvp", "gm" in "augment"), so they require word-boundary matching.
var executiveWordBoundarySignals = []string{
	"vp", "cto", "cfo", "ceo", "coo", "cmo", "cio", "president", "partner", "gm",
}

// Phrases where "senior" refers to elder care, not seniority.
var seniorBlocklist = []string{
	"senior living", "senior care", "senior center", "senior community",
	"senior services", "senior citizen", "senior housing", "senior residence",
	"senior home", "senior wellness",
}

// Retail/fast-food/service employers where "manager" titles are usually
// entry-level positions.
var retailServiceCompanies = []string{
	"mcdonald", "burger king", "wendy", "taco bell", "kfc",
	"subway", "starbucks", "dunkin", "chipotle", "chick-fil-a",
	"walmart", "target", "costco", "cvs", "walgreens",
	"dollar general", "dollar tree", "family dollar",
	"pizza hut", "domino", "papa john",
}

var descriptionSignals = map[Level][]string{
	LevelEntry: {
		"no experience required", "no experience necessary", "no experience needed",
		"no prior experience", "entry level position", "entry-level position",
		"recent graduate", "fresh graduate", "will train", "training provided",
		"learn on the job",
	},
	LevelMid: {
		"manage a team", "lead a team", "team management",
		"2-3 years", "3-5 years", "proven track record",
	},
	LevelSenior: {
		"report to the ceo", "report to the cto", "report to the cfo",
		"reports to ceo", "reports to cto", "report directly to",
		"extensive experience", "expert level", "deep expertise",
		"7+ years", "8+ years", "10+ years",
	},
	LevelExecutive: {
		"board of directors", "c-suite", "executive team",
		"p&l responsibility", "profit and loss", "company strategy",
		"organizational strategy", "15+ years", "20+ years",
	},
}
