package pao

// defaultRows lists the built-in person, action and object for 00-99.
var defaultRows = [100][3]string{
	{"Astronaut", "floating", "helmet"},
	{"Archer", "aiming", "arrow"},
	{"Ballerina", "bouncing", "ball"},
	{"Chef", "chopping", "carrot"},
	{"Diver", "diving", "dolphin"},
	{"Engineer", "welding", "engine"},
	{"Farmer", "feeding", "fence"},
	{"Gardener", "planting", "gloves"},
	{"Hunter", "tracking", "hat"},
	{"Inventor", "inventing", "igloo"},
	{"Juggler", "juggling", "jar"},
	{"King", "kicking", "kite"},
	{"Lifeguard", "lifting", "ladder"},
	{"Mime", "miming", "mirror"},
	{"Nurse", "nursing", "needle"},
	{"Ogre", "opening", "oven"},
	{"Painter", "painting", "paintbrush"},
	{"Queen", "quilting", "quilt"},
	{"Runner", "running", "rocket"},
	{"Sailor", "sailing", "sail"},
	{"Teacher", "teaching", "telescope"},
	{"Umpire", "calling", "umbrella"},
	{"Violinist", "vacuuming", "violin"},
	{"Wizard", "waving", "wand"},
	{"Xylophonist", "x-raying", "xylophone"},
	{"Yogi", "yodeling", "yo-yo"},
	{"Zookeeper", "zipping", "zebra"},
	{"Baker", "baking", "bread"},
	{"Boxer", "boxing", "bell"},
	{"Cowboy", "lassoing", "cactus"},
	{"Dentist", "drilling", "toothbrush"},
	{"Detective", "investigating", "magnifying glass"},
	{"Doctor", "examining", "stethoscope"},
	{"Drummer", "drumming", "drum"},
	{"Electrician", "wiring", "lightbulb"},
	{"Firefighter", "spraying", "hose"},
	{"Fisherman", "fishing", "fishing rod"},
	{"Florist", "arranging", "bouquet"},
	{"Golfer", "putting", "golf club"},
	{"Guitarist", "strumming", "guitar"},
	{"Hiker", "hiking", "backpack"},
	{"Jockey", "galloping", "saddle"},
	{"Judge", "sentencing", "gavel"},
	{"Karate master", "breaking", "brick"},
	{"Knight", "jousting", "lance"},
	{"Librarian", "shelving", "book"},
	{"Lumberjack", "sawing", "log"},
	{"Mechanic", "fixing", "wrench"},
	{"Miner", "digging", "pickaxe"},
	{"Monk", "meditating", "candle"},
	{"Ninja", "sneaking", "sword"},
	{"Pilot", "flying", "airplane"},
	{"Plumber", "plunging", "pipe"},
	{"Poet", "writing", "quill"},
	{"Potter", "sculpting", "vase"},
	{"Photographer", "snapping", "camera"},
	{"Rapper", "rhyming", "microphone"},
	{"Referee", "whistling", "whistle"},
	{"Robot", "beeping", "battery"},
	{"Samurai", "slicing", "katana"},
	{"Scientist", "experimenting", "beaker"},
	{"Snorkeler", "snorkeling", "flippers"},
	{"Sheriff", "arresting", "badge"},
	{"Skater", "skating", "skateboard"},
	{"Skier", "skiing", "skis"},
	{"Soldier", "saluting", "flag"},
	{"Surfer", "surfing", "surfboard"},
	{"Swimmer", "swimming", "goggles"},
	{"Tailor", "sewing", "scissors"},
	{"Tennis player", "serving", "racket"},
	{"Tourist", "sightseeing", "map"},
	{"Vampire", "biting", "coffin"},
	{"Waiter", "pouring", "tray"},
	{"Weightlifter", "bench-pressing", "barbell"},
	{"Witch", "brewing", "cauldron"},
	{"Writer", "typing", "typewriter"},
	{"Zombie", "shuffling", "brain"},
	{"Acrobat", "tumbling", "trampoline"},
	{"Barber", "shaving", "razor"},
	{"Builder", "hammering", "hammer"},
	{"Butcher", "grilling", "sausage"},
	{"Captain", "steering", "ship wheel"},
	{"Carpenter", "sanding", "plank"},
	{"Cheerleader", "cheering", "pom-poms"},
	{"Clown", "honking", "horn"},
	{"Comedian", "joking", "rubber chicken"},
	{"Conductor", "conducting", "baton"},
	{"Cyclist", "pedaling", "bicycle"},
	{"Dancer", "twirling", "ribbon"},
	{"DJ", "scratching", "turntable"},
	{"Explorer", "exploring", "compass"},
	{"Fencer", "lunging", "foil"},
	{"Gamer", "gaming", "controller"},
	{"Gymnast", "flipping", "balance beam"},
	{"Hairdresser", "curling", "hair dryer"},
	{"Janitor", "mopping", "mop"},
	{"Magician", "levitating", "top hat"},
	{"Mountaineer", "climbing", "rope"},
	{"Pharaoh", "mummifying", "pyramid"},
	{"Superhero", "rescuing", "cape"},
}

// Default returns the built-in lookup table covering every number 00-99.
func Default() Table {
	t := make(Table, len(defaultRows))
	for n, row := range defaultRows {
		t[n] = NewEntry(row[0], row[1], row[2])
	}
	return t
}
