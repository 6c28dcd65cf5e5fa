package matcher

// defaultSynonyms maps a canonical required keyword to the labels that
// count as evidence for it. Keys are lowercase.
var defaultSynonyms = map[string][]string{
	"kitchen":  {"kitchen", "stove", "refrigerator", "fridge", "sink", "cookware", "pot", "pan", "oven", "microwave", "cabinet"},
	"cooking":  {"cooking", "stove", "pan", "pot", "wok", "cutting board", "food", "dish"},
	"food":     {"food", "dish", "meal", "rice", "noodle", "bread", "salad", "fruit", "vegetable"},
	"desk":     {"desk", "table", "laptop", "computer", "keyboard", "monitor", "notebook", "lamp"},
	"study":    {"study", "book", "notebook", "pen", "desk", "textbook", "paper"},
	"book":     {"book", "novel", "textbook", "magazine", "page", "paper"},
	"computer": {"computer", "laptop", "keyboard", "monitor", "screen", "mouse"},
	"gym":      {"gym", "dumbbell", "barbell", "treadmill", "fitness", "yoga mat", "exercise equipment"},
	"exercise": {"exercise", "sport", "running", "fitness", "dumbbell", "yoga", "bicycle", "treadmill"},
	"running":  {"running", "runner", "track", "sneaker", "shoe", "road", "park"},
	"outdoor":  {"outdoor", "sky", "tree", "grass", "park", "street", "road", "mountain"},
	"bathroom": {"bathroom", "toilet", "bathtub", "shower", "washbasin", "towel", "mirror"},
	"bedroom":  {"bedroom", "bed", "pillow", "quilt", "blanket", "wardrobe"},
	"bed":      {"bed", "pillow", "quilt", "blanket", "mattress", "sheet"},
	"cleaning": {"cleaning", "mop", "broom", "vacuum cleaner", "bucket", "detergent", "rag"},
	"laundry":  {"laundry", "washing machine", "clothes", "hanger", "detergent", "basket"},
	"water":    {"water", "cup", "glass", "bottle", "mug", "kettle"},
	"plant":    {"plant", "flower", "pot", "leaf", "succulent", "tree", "garden"},
	"pet":      {"pet", "dog", "cat", "leash", "pet food", "bowl"},
}
