package brands

type entry struct {
	industry string
	tier     Tier
	minScore int
}

// tier1Giants maps registered brand domains to their guaranteed floor.
// Major US and Canadian brands, curated by hand.
var tier1Giants = map[string]entry{
	// US tech giants.
	"amazon.com":     {"E-Commerce", TierEnterprise, 85},
	"apple.com":      {"Technology", TierEnterprise, 90},
	"google.com":     {"Technology", TierEnterprise, 92},
	"microsoft.com":  {"Technology", TierEnterprise, 90},
	"meta.com":       {"Technology", TierEnterprise, 85},
	"netflix.com":    {"Entertainment", TierEnterprise, 88},
	"spotify.com":    {"Entertainment", TierEnterprise, 85},
	"salesforce.com": {"SaaS", TierEnterprise, 88},
	"adobe.com":      {"SaaS", TierEnterprise, 87},
	"oracle.com":     {"Technology", TierEnterprise, 82},
	"ibm.com":        {"Technology", TierEnterprise, 80},
	"intel.com":      {"Technology", TierEnterprise, 80},
	"nvidia.com":     {"Technology", TierEnterprise, 88},
	"cisco.com":      {"Technology", TierEnterprise, 82},
	"uber.com":       {"Transportation", TierEnterprise, 85},
	"lyft.com":       {"Transportation", TierEnterprise, 80},
	"airbnb.com":     {"Travel", TierEnterprise, 86},
	"booking.com":    {"Travel", TierEnterprise, 85},
	"expedia.com":    {"Travel", TierEnterprise, 82},
	"zillow.com":     {"Real Estate", TierEnterprise, 84},
	"openai.com":     {"AI/Tech", TierEnterprise, 90},
	"anthropic.com":  {"AI/Tech", TierEnterprise, 88},

	// US retail and CPG.
	"walmart.com":          {"Retail", TierEnterprise, 82},
	"target.com":           {"Retail", TierEnterprise, 80},
	"costco.com":           {"Retail", TierEnterprise, 78},
	"homedepot.com":        {"Retail", TierEnterprise, 80},
	"lowes.com":            {"Retail", TierEnterprise, 78},
	"bestbuy.com":          {"Retail", TierEnterprise, 80},
	"nike.com":             {"Retail", TierEnterprise, 88},
	"starbucks.com":        {"Food & Bev", TierEnterprise, 85},
	"mcdonalds.com":        {"Food & Bev", TierEnterprise, 82},
	"cocacola.com":         {"Food & Bev", TierEnterprise, 85},
	"pepsi.com":            {"Food & Bev", TierEnterprise, 82},
	"procterandgamble.com": {"CPG", TierEnterprise, 80},
	"jnj.com":              {"Healthcare", TierEnterprise, 82},
	"cvs.com":              {"Healthcare", TierEnterprise, 80},
	"walgreens.com":        {"Healthcare", TierEnterprise, 78},

	// US finance.
	"jpmorganchase.com":   {"Finance", TierEnterprise, 85},
	"chase.com":           {"Finance", TierEnterprise, 85},
	"bankofamerica.com":   {"Finance", TierEnterprise, 82},
	"wellsfargo.com":      {"Finance", TierEnterprise, 80},
	"citigroup.com":       {"Finance", TierEnterprise, 80},
	"americanexpress.com": {"Finance", TierEnterprise, 85},
	"visa.com":            {"Finance", TierEnterprise, 88},
	"mastercard.com":      {"Finance", TierEnterprise, 88},
	"paypal.com":          {"Fintech", TierEnterprise, 85},
	"stripe.com":          {"Fintech", TierEnterprise, 90},
	"square.com":          {"Fintech", TierEnterprise, 85},
	"intuit.com":          {"Fintech", TierEnterprise, 84},
	"goldmansachs.com":    {"Finance", TierEnterprise, 85},
	"fidelity.com":        {"Finance", TierEnterprise, 84},
	"schwab.com":          {"Finance", TierEnterprise, 82},

	// US media and telco.
	"disney.com":   {"Entertainment", TierEnterprise, 88},
	"hbo.com":      {"Entertainment", TierEnterprise, 85},
	"nytimes.com":  {"Media", TierEnterprise, 88},
	"cnn.com":      {"Media", TierEnterprise, 85},
	"foxnews.com":  {"Media", TierEnterprise, 82},
	"att.com":      {"Telecom", TierEnterprise, 78},
	"verizon.com":  {"Telecom", TierEnterprise, 80},
	"t-mobile.com": {"Telecom", TierEnterprise, 80},
	"comcast.com":  {"Telecom", TierEnterprise, 78},
	"xfinity.com":  {"Telecom", TierEnterprise, 78},

	// US auto.
	"tesla.com":     {"Automotive", TierEnterprise, 88},
	"ford.com":      {"Automotive", TierEnterprise, 80},
	"gm.com":        {"Automotive", TierEnterprise, 78},
	"chevrolet.com": {"Automotive", TierEnterprise, 78},
	"toyota.com":    {"Automotive", TierEnterprise, 82},
	"honda.com":     {"Automotive", TierEnterprise, 80},

	// Canadian giants.
	"shopify.ca":         {"E-Commerce", TierEnterprise, 89},
	"shopify.com":        {"E-Commerce", TierEnterprise, 89},
	"rbc.com":            {"Finance", TierEnterprise, 85},
	"td.com":             {"Finance", TierEnterprise, 84},
	"scotiabank.com":     {"Finance", TierEnterprise, 82},
	"bmo.com":            {"Finance", TierEnterprise, 82},
	"cibc.com":           {"Finance", TierEnterprise, 80},
	"manulife.com":       {"Insurance", TierEnterprise, 80},
	"sunlife.com":        {"Insurance", TierEnterprise, 80},
	"thomsonreuters.com": {"Media", TierEnterprise, 85},
	"lululemon.com":      {"Retail", TierEnterprise, 88},
	"aritzia.com":        {"Retail", TierEnterprise, 84},
	"canadagoose.com":    {"Retail", TierEnterprise, 82},
	"roots.com":          {"Retail", TierGrowth, 78},
	"timhortons.ca":      {"Food & Bev", TierEnterprise, 80},
	"timhortons.com":     {"Food & Bev", TierEnterprise, 80},
	"aircanada.com":      {"Travel", TierEnterprise, 80},
	"westjet.com":        {"Travel", TierEnterprise, 78},
	"rogers.com":         {"Telecom", TierEnterprise, 78},
	"bell.ca":            {"Telecom", TierEnterprise, 78},
	"telus.com":          {"Telecom", TierEnterprise, 78},
	"blackberry.com":     {"Technology", TierEnterprise, 75},
	"opentext.com":       {"Technology", TierEnterprise, 80},
	"cgi.com":            {"Technology", TierEnterprise, 80},
	"loblaws.ca":         {"Retail", TierEnterprise, 78},
	"metro.ca":           {"Retail", TierEnterprise, 78},
	"sobeys.com":         {"Retail", TierEnterprise, 78},
	"enbridge.com":       {"Energy", TierEnterprise, 78},
	"cn.ca":              {"Transportation", TierEnterprise, 80},

	// Canadian growth and tech.
	"neofinancial.com": {"Fintech", TierGrowth, 75},
	"wealthsimple.com": {"Fintech", TierGrowth, 78},
	"hootsuite.com":    {"SaaS", TierGrowth, 76},
	"clio.com":         {"Legal Tech", TierGrowth, 74},
	"freshbooks.com":   {"SaaS", TierGrowth, 75},
	"unbounce.com":     {"SaaS", TierGrowth, 73},
	"dapperlabs.com":   {"Web3", TierGrowth, 75},
	"1password.com":    {"SaaS", TierGrowth, 82},
	"kik.com":          {"Social", TierGrowth, 70},
	"wattpad.com":      {"Media", TierGrowth, 80},
	"koho.ca":          {"Fintech", TierGrowth, 72},
	"jobber.com":       {"SaaS", TierGrowth, 74},
	"jane.app":         {"SaaS", TierGrowth, 75},
	"lightspeedhq.com": {"SaaS", TierEnterprise, 82},

	// Common SaaS tools.
	"slack.com":     {"SaaS", TierEnterprise, 85},
	"zoom.us":       {"SaaS", TierEnterprise, 84},
	"notion.so":     {"SaaS", TierEnterprise, 83},
	"figma.com":     {"SaaS", TierEnterprise, 84},
	"canva.com":     {"SaaS", TierEnterprise, 85},
	"mailchimp.com": {"SaaS", TierEnterprise, 82},
	"zendesk.com":   {"SaaS", TierEnterprise, 83},
	"hubspot.com":   {"SaaS", TierEnterprise, 87},
	"atlassian.com": {"SaaS", TierEnterprise, 84},
	"trello.com":    {"SaaS", TierEnterprise, 82},
	"asana.com":     {"SaaS", TierEnterprise, 82},
	"monday.com":    {"SaaS", TierEnterprise, 82},
	"clickup.com":   {"SaaS", TierEnterprise, 80},
	"intercom.com":  {"SaaS", TierEnterprise, 80},
	"drift.com":     {"SaaS", TierEnterprise, 78},
	"linear.app":    {"SaaS", TierGrowth, 78},
	"airtable.com":  {"SaaS", TierEnterprise, 82},
	"loom.com":      {"SaaS", TierGrowth, 78},
	"miro.com":      {"SaaS", TierEnterprise, 82},
}

// knownBlocked lists social platforms that always refuse scrapers. A blocked
// fetch from one of these is not a penalty signal.
var knownBlocked = map[string]entry{
	"facebook.com":  {"Social Media", TierEnterprise, 85},
	"instagram.com": {"Social Media", TierEnterprise, 85},
	"twitter.com":   {"Social Media", TierEnterprise, 82},
	"x.com":         {"Social Media", TierEnterprise, 82},
	"linkedin.com":  {"Social Media", TierEnterprise, 88},
	"tiktok.com":    {"Social Media", TierEnterprise, 80},
	"pinterest.com": {"Social Media", TierEnterprise, 80},
	"reddit.com":    {"Social Media", TierEnterprise, 80},
	"snapchat.com":  {"Social Media", TierEnterprise, 78},
	"whatsapp.com":  {"Social Media", TierEnterprise, 85},
	"youtube.com":   {"Social Media", TierEnterprise, 88},
	"vimeo.com":     {"Social Media", TierEnterprise, 80},
}
