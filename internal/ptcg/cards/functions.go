package cards

import "strings"

// functionKeywords maps name keywords to function tags. A card accumulates
// every tag whose keyword appears in its name; tags are deduplicated and
// kept in table order for deterministic output.
var functionKeywords = []struct {
	keyword string
	fn      Function
}{
	{"professor's research", FuncDraw},
	{"research", FuncDraw},
	{"iono", FuncDraw},
	{"judge", FuncDraw},
	{"colress", FuncDraw},
	{"bibarel", FuncDraw},
	{"poffin", FuncSearch},
	{"ball", FuncSearch},
	{"vessel", FuncSearch},
	{"communication", FuncSearch},
	{"trekking shoes", FuncSearch},
	{"capturing aroma", FuncSearch},
	{"rod", FuncRecovery},
	{"stretcher", FuncRecovery},
	{"rescue", FuncRecovery},
	{"recycle", FuncRecovery},
	{"lost vacuum", FuncRecovery},
	{"switch", FuncSwitching},
	{"rope", FuncSwitching},
	{"escape", FuncSwitching},
	{"carousel", FuncSwitching},
	{"prime catcher", FuncSwitching},
	{"charge", FuncEnergyAccel},
	{"dark patch", FuncEnergyAccel},
	{"mirage gate", FuncEnergyAccel},
	{"melony", FuncEnergyAccel},
	{"crispin", FuncEnergyAccel},
	{"hammer", FuncDisruption},
	{"boss's orders", FuncDisruption},
	{"counter catcher", FuncDisruption},
	{"stamp", FuncDisruption},
	{"marnie", FuncDisruption},
	{"candy", FuncSetup},
	{"pal pad", FuncSetup},
	{"battle vip pass", FuncSetup},
	{"arven", FuncSetup},
	{"cape", FuncProtection},
	{"vest", FuncProtection},
	{"manaphy", FuncProtection},
	{"mist energy", FuncProtection},
	{"belt", FuncDamage},
	{"choice", FuncDamage},
	{"radiant", FuncDamage},
	{"potion", FuncHealing},
	{"cheryl", FuncHealing},
	{"heal", FuncHealing},
}

// DetectFunctions infers gameplay function tags from a card name by keyword
// matching. Names with no matching keyword yield no tags.
func DetectFunctions(name string) []Function {
	lower := strings.ToLower(name)
	seen := make(map[Function]bool)
	var functions []Function
	for _, entry := range functionKeywords {
		if seen[entry.fn] {
			continue
		}
		if strings.Contains(lower, entry.keyword) {
			seen[entry.fn] = true
			functions = append(functions, entry.fn)
		}
	}
	return functions
}
