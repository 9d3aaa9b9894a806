package cards

import "regexp"

// SubtypeRule maps a name pattern to a trainer subtype. Rules are evaluated
// in order; the first match wins. The rule list is data, not code, so new
// sets can be supported by appending rules.
type SubtypeRule struct {
	Pattern *regexp.Regexp
	Subtype TrainerSubtype
}

// exactTrainers maps card names that carry no category keyword to their
// subtype. Checked before the keyword rules.
var exactTrainers = map[string]TrainerSubtype{
	"pal pad":                   SubtypeItem,
	"earthen vessel":            SubtypeItem,
	"nest ball":                 SubtypeItem,
	"counter catcher":           SubtypeItem,
	"prime catcher":             SubtypeItem,
	"buddy-buddy poffin":        SubtypeItem,
	"glass trumpet":             SubtypeItem,
	"night stretcher":           SubtypeItem,
	"secret box":                SubtypeItem,
	"unfair stamp":              SubtypeItem,
	"mirage gate":               SubtypeItem,
	"lost vacuum":               SubtypeItem,
	"battle vip pass":           SubtypeItem,
	"trekking shoes":            SubtypeItem,
	"capturing aroma":           SubtypeItem,
	"evolution incense":         SubtypeItem,
	"pokestop":                  SubtypeStadium,
	"pokéstop":                  SubtypeStadium,
	"sparkling crystal":         SubtypeTool,
	"area zero underdepths":     SubtypeStadium,
	"artazon":                   SubtypeStadium,
	"mesagoza":                  SubtypeStadium,
	"levincia":                  SubtypeStadium,
	"iono":                      SubtypeSupporter,
	"arven":                     SubtypeSupporter,
	"jacq":                      SubtypeSupporter,
	"nemona":                    SubtypeSupporter,
	"penny":                     SubtypeSupporter,
	"giacomo":                   SubtypeSupporter,
	"brassius":                  SubtypeSupporter,
	"geeta":                     SubtypeSupporter,
	"miriam":                    SubtypeSupporter,
	"clavell":                   SubtypeSupporter,
	"carmine":                   SubtypeSupporter,
	"kieran":                    SubtypeSupporter,
	"crispin":                   SubtypeSupporter,
	"lacey":                     SubtypeSupporter,
	"drayton":                   SubtypeSupporter,
	"briar":                     SubtypeSupporter,
	"janine's secret technique": SubtypeSupporter,
	"n's resolve":               SubtypeSupporter,
	"cynthia":                   SubtypeSupporter,
	"marnie":                    SubtypeSupporter,
	"judge":                     SubtypeSupporter,
}

// defaultTrainerRules is the ordered keyword rule list for trainer subtype
// classification. Supporter patterns come first because person names beat
// object keywords ("Boss's Orders" would otherwise never match).
var defaultTrainerRules = []SubtypeRule{
	{regexp.MustCompile(`(?i)professor`), SubtypeSupporter},
	{regexp.MustCompile(`(?i)boss'?s orders`), SubtypeSupporter},
	{regexp.MustCompile(`(?i)\bresearch\b`), SubtypeSupporter},
	{regexp.MustCompile(`(?i)'s (orders|help|conviction|scenario|resolve|aid|vitality|kindness|encouragement|experiment|secret technique)`), SubtypeSupporter},

	{regexp.MustCompile(`(?i)stadium`), SubtypeStadium},
	{regexp.MustCompile(`(?i)\bgym\b`), SubtypeStadium},
	{regexp.MustCompile(`(?i)\b(tower|temple|arena|court|beach|plaza|academy|lake|town|city|moor|ruins)\b`), SubtypeStadium},

	{regexp.MustCompile(`(?i)\b(belt|charm|stone|board|cape|helmet|glasses|vest|band|crown|cloak|sword)\b`), SubtypeTool},

	{regexp.MustCompile(`(?i)\bball\b`), SubtypeItem},
	{regexp.MustCompile(`(?i)\b(candy|rod|switch|catcher|vessel|hammer|stretcher|basket|scoop|capsule|machine|trolley|bicycle|letter|stamp|potion|drum|shovel|whistle|poffin|retrieval|rope|pad|box|trumpet)\b`), SubtypeItem},
}

// basicEnergyPatterns recognizes basic energy lines, one pattern per
// supported locale. The PTCGO export writes either "Basic Fire Energy" or
// the bare "Fire Energy" form; the Brazilian Portuguese client writes
// "Energia Fogo Básica".
var basicEnergyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(basic )?(fire|water|grass|lightning|psychic|fighting|darkness|metal|dragon|colorless|fairy) energy$`),
	regexp.MustCompile(`(?i)^energia (de )?(fogo|água|agua|planta|elétrica|eletrica|psíquica|psiquica|lutadora|escuridão|escuridao|metálica|metalica|dragão|dragao|incolor|fada)( básica| basica)?$`),
}

// energyNameTypes maps the color token inside a basic energy name to the
// energy type, covering both configured locales.
var energyNameTypes = map[string]EnergyType{
	"fire": EnergyFire, "fogo": EnergyFire,
	"water": EnergyWater, "água": EnergyWater, "agua": EnergyWater,
	"grass": EnergyGrass, "planta": EnergyGrass,
	"lightning": EnergyLightning, "elétrica": EnergyLightning, "eletrica": EnergyLightning,
	"psychic": EnergyPsychic, "psíquica": EnergyPsychic, "psiquica": EnergyPsychic,
	"fighting": EnergyFighting, "lutadora": EnergyFighting,
	"darkness": EnergyDarkness, "escuridão": EnergyDarkness, "escuridao": EnergyDarkness,
	"metal": EnergyMetal, "metálica": EnergyMetal, "metalica": EnergyMetal,
	"dragon": EnergyDragon, "dragão": EnergyDragon, "dragao": EnergyDragon,
	"colorless": EnergyColorless, "incolor": EnergyColorless,
	"fairy": EnergyFairy, "fada": EnergyFairy,
}
