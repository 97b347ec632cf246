package classifier

import (
	"regexp"
	"strings"

	"lawbandhu-backend/models"
)

// legalKeywords is the broad legal vocabulary used by ClassifyLegality.
var legalKeywords = newKeywordSet(
	// general
	"law", "legal", "lawyer", "attorney", "court", "judge", "case", "lawsuit", "litigation",
	"advocate", "counsel", "barrister", "solicitor", "jurisdiction", "statute", "legislation",

	// property and real estate
	"property", "real estate", "land", "house", "apartment", "tenant", "landlord", "rent",
	"lease", "title", "deed", "mortgage", "eviction", "ownership", "easement", "zoning",

	// contract and business
	"contract", "agreement", "breach", "terms", "conditions", "business", "company", "llc",
	"partnership", "corporation", "incorporation", "trademark", "patent", "copyright",
	"intellectual property", "nda", "non-disclosure", "clause", "negotiation",

	// family
	"divorce", "custody", "child support", "alimony", "marriage", "separation", "adoption",
	"guardianship", "prenuptial", "family", "domestic", "maintenance", "visitation",

	// criminal and traffic
	"criminal", "crime", "arrest", "charge", "defense", "prosecution", "bail", "trial",
	"sentence", "conviction", "appeal", "police", "investigation", "warrant", "rights",
	"miranda", "felony", "misdemeanor", "penalty", "prison", "jail", "probation",
	"hit and run", "accident", "collision", "crash", "vehicle", "car accident", "insurance claim",
	"driver", "license", "traffic violation", "reckless driving", "dui", "dwi",

	// civil
	"civil", "discrimination", "harassment", "defamation", "libel", "slander",
	"negligence", "injury", "compensation", "damages", "liability", "tort",
	"consumer", "complaint", "dispute", "arbitration", "mediation", "settlement",

	// employment
	"employment", "employee", "employer", "workplace", "labor", "wage", "salary",
	"termination", "wrongful discharge", "overtime",

	// procedure
	"file", "petition", "motion", "hearing", "testimony", "evidence", "witness",
	"subpoena", "affidavit", "deposition", "discovery", "verdict", "judgment",
	"injunction", "restraining order", "summons",

	// scenario phrasing
	"what happens if", "can i sue", "is it legal", "what are my rights", "who is liable",
	"who is responsible", "can someone", "what if someone", "legal action", "legal consequences",

	// Indian statutes and institutions
	"ipc", "crpc", "cpc", "section", "act", "constitution", "supreme court", "high court",
	"advocate general", "public prosecutor", "magistrate", "sessions court", "tribunal",
	"rti", "fir", "chargesheet", "anticipatory bail", "quash",
)

// nonLegalIndicators are topics the assistant refuses outright when no legal
// vocabulary accompanies them.
var nonLegalIndicators = newKeywordSet(
	// entertainment
	"movie", "film", "music", "song", "game", "video game", "sports", "football", "cricket",
	"entertainment", "actor", "actress", "celebrity", "tv show", "series", "episode",

	// technology
	"programming", "code", "software", "app", "website", "computer", "laptop", "phone",
	"android", "ios", "windows", "mac", "linux", "algorithm", "database",

	// science and maths
	"physics", "chemistry", "biology", "mathematics", "equation", "formula", "calculation",
	"experiment", "theory", "hypothesis",

	// food
	"recipe", "cooking", "food", "restaurant", "dish", "ingredient", "kitchen",

	// travel
	"travel", "vacation", "tourism", "destination", "hotel", "flight",

	// health
	"diet", "exercise", "fitness", "workout", "nutrition", "vitamin",

	// trivia
	"what is", "who is", "when did", "where is", "how to make", "how to cook",
	"history of", "capital of", "population of",
)

// generalQuestionPatterns catch trivia phrasing that slipped past the indicator list.
var generalQuestionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^what is [a-z\s]+ (movie|song|game|food|dish)`),
	regexp.MustCompile(`(?i)^who is [a-z\s]+ (actor|singer|player|chef)`),
	regexp.MustCompile(`(?i)^how to (cook|make|prepare|play)`),
	regexp.MustCompile(`(?i)^(recipe|cooking) (for|of)`),
}

// personalIssuePatterns: first person, past-tense action, request for help,
// hypothetical scenario. Order matters only for readability.
var personalIssuePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(I|my|me|mine|I'm|I've|I am|I have|I was|I did)\b`),
	regexp.MustCompile(`(?i)\b(happened|occurred|did|was|were|got|received|signed|agreed|bought|sold)\b`),
	regexp.MustCompile(`(?i)\b(problem|issue|trouble|help|advice|what should I|what can I|need to|have to)\b`),
	regexp.MustCompile(`(?i)\b(what happens if|what if someone|if somebody|if someone|can someone|what would happen)\b`),
}

// fieldKeywords maps every practice area to its domain terms.
var fieldKeywords = map[models.LegalField]keywordSet{
	models.FieldProperty: newKeywordSet(
		"property", "house", "apartment", "land", "real estate", "landlord", "tenant",
		"rent", "lease", "eviction", "mortgage", "title", "deed", "ownership", "boundary",
		"construction", "builder", "flat", "plot", "possession",
	),
	models.FieldFamily: newKeywordSet(
		"divorce", "marriage", "custody", "child", "spouse", "wife", "husband",
		"separation", "alimony", "maintenance", "adoption", "domestic violence",
		"dowry", "family", "inheritance", "will", "guardian",
	),
	models.FieldCriminal: newKeywordSet(
		"arrested", "police", "fir", "charge", "criminal", "theft", "fraud", "assault",
		"murder", "bail", "accused", "victim", "crime", "investigation", "harassment",
		"threatening", "violence", "abuse", "complaint", "false case", "hit and run",
		"accident", "collision", "crash", "runs away", "flee", "escaped", "vehicle",
	),
	models.FieldContract: newKeywordSet(
		"contract", "agreement", "breach", "signed", "terms", "conditions", "deal",
		"violated", "obligation", "clause", "payment", "delivery", "services",
		"mou", "memorandum", "partnership", "business deal",
	),
	models.FieldEmployment: newKeywordSet(
		"job", "employer", "employee", "fired", "terminated", "resignation", "salary",
		"wage", "workplace", "boss", "company", "work", "harassment at work",
		"unpaid", "overtime", "discrimination", "wrongful termination", "labor",
	),
	models.FieldConsumer: newKeywordSet(
		"bought", "purchased", "product", "defective", "refund", "warranty", "seller",
		"shop", "merchant", "consumer", "complaint", "goods", "services", "fraud",
		"cheated", "online shopping", "delivery", "damaged",
	),
	models.FieldCivil: newKeywordSet(
		"dispute", "neighbor", "damages", "compensation", "injury", "accident",
		"negligence", "liability", "sued", "court", "case", "legal action",
	),
	models.FieldCorporate: newKeywordSet(
		"company", "business", "partnership", "llc", "corporation", "shareholder",
		"director", "board", "incorporation", "registration", "gst", "tax",
		"compliance", "audit", "merger",
	),
	models.FieldCyber: newKeywordSet(
		"online", "internet", "social media", "hacking", "cybercrime", "data theft",
		"privacy", "defamation online", "fake profile", "cyber harassment",
		"identity theft", "phishing", "website",
	),
	models.FieldIntellectualProperty: newKeywordSet(
		"trademark", "patent", "copyright", "brand", "logo", "invention", "design",
		"plagiarism", "infringement", "intellectual property", "ip",
	),
}

// keywordSet is an ordered, de-duplicated list of lowercase terms matched by
// substring containment.
type keywordSet []string

func newKeywordSet(terms ...string) keywordSet {
	seen := make(map[string]struct{}, len(terms))
	set := make(keywordSet, 0, len(terms))
	for _, term := range terms {
		term = strings.ToLower(term)
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		set = append(set, term)
	}
	return set
}

// count returns how many terms occur in lowered, which must already be lowercase.
func (k keywordSet) count(lowered string) int {
	n := 0
	for _, term := range k {
		if strings.Contains(lowered, term) {
			n++
		}
	}
	return n
}

// any reports whether at least one term occurs in lowered.
func (k keywordSet) any(lowered string) bool {
	for _, term := range k {
		if strings.Contains(lowered, term) {
			return true
		}
	}
	return false
}

func matchCount(patterns []*regexp.Regexp, text string) int {
	n := 0
	for _, p := range patterns {
		if p.MatchString(text) {
			n++
		}
	}
	return n
}
