package sampler

// corpus is the word list for word mode: short, common, lowercase words
// that stay memorable inside a passphrase.
var corpus = []string{
	"acid", "acorn", "actor", "alarm", "alley", "amber", "anchor", "angle",
	"anvil", "apple", "apron", "arrow", "aspen", "atlas", "attic", "audio",
	"badge", "bagel", "baker", "bamboo", "banjo", "barn", "basil", "bass",
	"baton", "beach", "beacon", "bell", "bench", "birch", "bison", "blade",
	"blaze", "bloom", "bolt", "bonus", "book", "booth", "brass", "brick",
	"bridge", "brook", "broom", "bugle", "bunker", "butter", "cabin", "cable",
	"cactus", "camel", "candle", "canoe", "canyon", "cargo", "carrot", "cedar",
	"cello", "chalk", "chapel", "chart", "cherry", "chess", "chime", "cider",
	"cinema", "circle", "civil", "clay", "cliff", "clock", "cloud", "clover",
	"cobalt", "coin", "comet", "compass", "copper", "coral", "cotton", "cove",
	"crane", "crater", "creek", "cricket", "crystal", "cubic", "cumin", "cyclone",
	"daisy", "deck", "delta", "denim", "depot", "desk", "dewdrop", "diesel",
	"dome", "donor", "drift", "drum", "dune", "eagle", "easel", "echo",
	"eclipse", "elbow", "elder", "ember", "engine", "epoch", "ferry", "fiddle",
	"field", "fig", "finch", "fjord", "flint", "flute", "fog", "forest",
	"fossil", "fox", "frost", "gadget", "galaxy", "garden", "garlic", "gavel",
	"gecko", "geyser", "ginger", "glacier", "glen", "goose", "granite", "grape",
	"gravel", "grove", "guitar", "gulf", "hammer", "harbor", "harp", "hazel",
	"heron", "hickory", "hill", "honey", "hoof", "horizon", "husk", "igloo",
	"indigo", "ingot", "iris", "iron", "island", "ivory", "jade", "jigsaw",
	"jungle", "juniper", "kayak", "kettle", "kiwi", "knoll", "lagoon", "lantern",
	"lapel", "larch", "laser", "latch", "lava", "ledger", "lemon", "lentil",
	"lilac", "lily", "linen", "lion", "lobby", "locust", "lodge", "lotus",
	"lumber", "lunar", "lynx", "magnet", "mango", "maple", "marble", "marsh",
	"mason", "meadow", "melon", "mesa", "mint", "mirror", "moccasin", "molar",
	"monsoon", "moose", "morning", "mosaic", "moss", "moth", "mulch", "mural",
	"nectar", "nickel", "north", "nougat", "nutmeg", "oak", "oasis", "ocean",
	"olive", "onion", "onyx", "opal", "orbit", "orchid", "osprey", "otter",
	"owl", "oxen", "paddle", "pagoda", "palm", "panda", "pantry", "parcel",
	"pasture", "patio", "pearl", "pebble", "pecan", "pelican", "pepper", "piano",
	"pier", "pigeon", "pillow", "pine", "pistachio", "plank", "plasma", "plaza",
	"plume", "pocket", "pollen", "pond", "poplar", "poppy", "prairie", "prism",
	"pumice", "quail", "quartz", "quill", "quiver", "raccoon", "radar", "raft",
	"rain", "raisin", "ranch", "raven", "reef", "ribbon", "ridge", "river",
	"robin", "rocket", "rosin", "rudder", "runway", "saddle", "saffron", "sage",
	"salmon", "sand", "sapphire", "satchel", "scallop", "scarf", "schooner", "scout",
	"sequoia", "shadow", "shale", "shell", "sierra", "silk", "silo", "slate",
	"sleet", "sloop", "smoke", "sonar", "sparrow", "spice", "spiral", "spruce",
	"squash", "stable", "stamp", "steam", "steel", "stone", "stork", "storm",
	"summit", "sundial", "swan", "syrup", "tablet", "talon", "tangelo", "taper",
	"tassel", "teak", "tempo", "terrace", "thistle", "thunder", "tiger", "tiller",
	"timber", "topaz", "torch", "trail", "tulip", "tundra", "turbine", "turnip",
	"twig", "umber", "valley", "vanilla", "velvet", "violet", "vista", "walnut",
	"walrus", "wagon", "wharf", "wheat", "willow", "windmill", "wolf", "wren",
	"yarrow", "yodel", "yucca", "zephyr", "zinc", "zinnia",
}
