package bank

// seedCategories returns the compiled-in question bank.
func seedCategories() []Category {
	return []Category{
		{
			ID:   "logic",
			Name: "Logic & Reasoning",
			Icon: "🧠",
			Questions: []Question{
				{
					Prompt:  "What has an eye, but cannot see?",
					Options: []string{"A needle", "A potato", "A storm", "A key"},
					Answer:  "A needle",
				},
				{
					Prompt:  "Which word in the dictionary is spelled incorrectly?",
					Options: []string{"Incorrectly", "Separate", "Believe", "Friend"},
					Answer:  "Incorrectly",
				},
				{
					Prompt:  "I am always hungry, I must always be fed, the finger I lick will soon turn red. What am I?",
					Options: []string{"Fire", "A pet", "A monster", "A vacuum cleaner"},
					Answer:  "Fire",
				},
				{
					Prompt:  "What has cities, but no houses; forests, but no trees; and water, but no fish?",
					Options: []string{"A map", "A book", "A desert", "A painting"},
					Answer:  "A map",
				},
				{
					Prompt:  "What can travel around the world while staying in a corner?",
					Options: []string{"A stamp", "A thought", "A letter", "A picture"},
					Answer:  "A stamp",
				},
				{
					Prompt:  "I have to be broken before you can use me. What am I?",
					Options: []string{"An egg", "A promise", "A secret", "A mirror"},
					Answer:  "An egg",
				},
				{
					Prompt:  "What is full of holes but still holds water?",
					Options: []string{"A sponge", "A sieve", "A colander", "A net"},
					Answer:  "A sponge",
				},
				{
					Prompt:  "What question can you never answer yes to?",
					Options: []string{"Are you asleep yet?", "Do you like pizza?", "Is it raining?", "Are you happy?"},
					Answer:  "Are you asleep yet?",
				},
				{
					Prompt:  "What is always in front of you but can’t be seen?",
					Options: []string{"The future", "Your nose", "Your reflection", "A ghost"},
					Answer:  "The future",
				},
				{
					Prompt:  "The more you take, the more you leave behind. What am I?",
					Options: []string{"Footsteps", "Memories", "Photographs", "Secrets"},
					Answer:  "Footsteps",
				},
			},
		},
		{
			ID:   "math",
			Name: "Math Fun",
			Icon: "🔢",
			Questions: []Question{
				{
					Prompt:  "What is 7 multiplied by 8?",
					Options: []string{"56", "48", "64", "72"},
					Answer:  "56",
				},
				{
					Prompt:  "If a triangle has sides of 3cm, 4cm, and 5cm, what kind of triangle is it?",
					Options: []string{"Right-angled", "Equilateral", "Isosceles", "Obtuse"},
					Answer:  "Right-angled",
				},
				{
					Prompt:  "What is the sum of all angles in a quadrilateral?",
					Options: []string{"360 degrees", "180 degrees", "90 degrees", "270 degrees"},
					Answer:  "360 degrees",
				},
				{
					Prompt:  "If you buy 3 apples for $1.50, how much does one apple cost?",
					Options: []string{"$0.50", "$0.75", "$0.45", "$1.00"},
					Answer:  "$0.50",
				},
				{
					Prompt:  "What is the next number in the sequence: 2, 4, 6, 8, ...?",
					Options: []string{"10", "9", "12", "11"},
					Answer:  "10",
				},
				{
					Prompt:  "How many minutes are in 2 hours?",
					Options: []string{"120 minutes", "60 minutes", "180 minutes", "90 minutes"},
					Answer:  "120 minutes",
				},
				{
					Prompt:  "What is 25% of 200?",
					Options: []string{"50", "25", "75", "100"},
					Answer:  "50",
				},
				{
					Prompt:  "If you subtract 15 from 40, what do you get?",
					Options: []string{"25", "30", "15", "35"},
					Answer:  "25",
				},
				{
					Prompt:  "A square has a perimeter of 20 cm. What is the length of one side?",
					Options: []string{"5 cm", "4 cm", "10 cm", "2 cm"},
					Answer:  "5 cm",
				},
				{
					Prompt:  "What is 12 divided by 3?",
					Options: []string{"4", "3", "6", "2"},
					Answer:  "4",
				},
			},
		},
		{
			ID:   "science",
			Name: "Science Basics",
			Icon: "🔬",
			Questions: []Question{
				{
					Prompt:  "What planet is known as the \"Red Planet\"?",
					Options: []string{"Mars", "Jupiter", "Venus", "Saturn"},
					Answer:  "Mars",
				},
				{
					Prompt:  "What is the process by which plants make their food?",
					Options: []string{"Photosynthesis", "Respiration", "Transpiration", "Germination"},
					Answer:  "Photosynthesis",
				},
				{
					Prompt:  "What is the largest organ in the human body?",
					Options: []string{"Skin", "Heart", "Brain", "Liver"},
					Answer:  "Skin",
				},
				{
					Prompt:  "Which gas do plants absorb from the atmosphere?",
					Options: []string{"Carbon Dioxide", "Oxygen", "Nitrogen", "Hydrogen"},
					Answer:  "Carbon Dioxide",
				},
				{
					Prompt:  "What force pulls objects towards the center of the Earth?",
					Options: []string{"Gravity", "Magnetism", "Friction", "Tension"},
					Answer:  "Gravity",
				},
				{
					Prompt:  "What state of matter has a definite shape and a definite volume?",
					Options: []string{"Solid", "Liquid", "Gas", "Plasma"},
					Answer:  "Solid",
				},
				{
					Prompt:  "What is the closest star to Earth?",
					Options: []string{"The Sun", "Proxima Centauri", "Sirius", "Alpha Centauri"},
					Answer:  "The Sun",
				},
				{
					Prompt:  "Which part of a plant absorbs water and nutrients from the soil?",
					Options: []string{"Roots", "Leaves", "Stem", "Flowers"},
					Answer:  "Roots",
				},
				{
					Prompt:  "What is the main component of the air we breathe?",
					Options: []string{"Nitrogen", "Oxygen", "Carbon Dioxide", "Argon"},
					Answer:  "Nitrogen",
				},
				{
					Prompt:  "What causes day and night on Earth?",
					Options: []string{"Earth spinning on its axis", "Earth orbiting the Sun", "The Moon orbiting Earth", "The Sun moving"},
					Answer:  "Earth spinning on its axis",
				},
			},
		},
		{
			ID:   "brainTeasers",
			Name: "Brain Teasers",
			Icon: "💡",
			Questions: []Question{
				{
					Prompt:  "What has an eye but cannot see?",
					Options: []string{"A needle", "A storm", "A potato", "A key"},
					Answer:  "A needle",
				},
				{
					Prompt:  "What is always coming but never arrives?",
					Options: []string{"Tomorrow", "Yesterday", "Today", "Never"},
					Answer:  "Tomorrow",
				},
				{
					Prompt:  "What has to be broken before you can use it?",
					Options: []string{"An egg", "A secret", "A heart", "A promise"},
					Answer:  "An egg",
				},
				{
					Prompt:  "What is so fragile that saying its name breaks it?",
					Options: []string{"Silence", "Glass", "A secret", "A promise"},
					Answer:  "Silence",
				},
				{
					Prompt:  "What has a head and a tail, but no body?",
					Options: []string{"A coin", "A snake", "A river", "A story"},
					Answer:  "A coin",
				},
				{
					Prompt:  "What can you catch, but not throw?",
					Options: []string{"A cold", "A ball", "A frisbee", "A fish"},
					Answer:  "A cold",
				},
				{
					Prompt:  "What runs around the whole yard without moving?",
					Options: []string{"A fence", "A dog", "A path", "A car"},
					Answer:  "A fence",
				},
				{
					Prompt:  "What has hands but cannot clap?",
					Options: []string{"A clock", "A tree", "A person", "A ghost"},
					Answer:  "A clock",
				},
				{
					Prompt:  "What gets wet while drying?",
					Options: []string{"A towel", "A sponge", "A shirt", "A river"},
					Answer:  "A towel",
				},
				{
					Prompt:  "What has many keys but can’t open a single lock?",
					Options: []string{"A piano", "A keyboard", "A ring", "A safe"},
					Answer:  "A piano",
				},
			},
		},
		{
			ID:   "generalKnowledge",
			Name: "General Knowledge",
			Icon: "📚",
			Questions: []Question{
				{
					Prompt:  "What is the capital city of France?",
					Options: []string{"Paris", "Rome", "Berlin", "Madrid"},
					Answer:  "Paris",
				},
				{
					Prompt:  "Which animal is known as the \"King of the Jungle\"?",
					Options: []string{"Lion", "Tiger", "Elephant", "Bear"},
					Answer:  "Lion",
				},
				{
					Prompt:  "How many continents are there in the world?",
					Options: []string{"7", "5", "6", "8"},
					Answer:  "7",
				},
				{
					Prompt:  "What is the longest river in the world?",
					Options: []string{"Nile River", "Amazon River", "Yangtze River", "Mississippi River"},
					Answer:  "Nile River",
				},
				{
					Prompt:  "Which country is famous for the Great Wall?",
					Options: []string{"China", "India", "Japan", "Egypt"},
					Answer:  "China",
				},
				{
					Prompt:  "What is the largest ocean on Earth?",
					Options: []string{"Pacific Ocean", "Atlantic Ocean", "Indian Ocean", "Arctic Ocean"},
					Answer:  "Pacific Ocean",
				},
				{
					Prompt:  "What is the highest mountain in the world?",
					Options: []string{"Mount Everest", "K2", "Kangchenjunga", "Lhotse"},
					Answer:  "Mount Everest",
				},
				{
					Prompt:  "Which of these is NOT a primary color?",
					Options: []string{"Green", "Red", "Blue", "Yellow"},
					Answer:  "Green",
				},
				{
					Prompt:  "What is the common name for an uncharged particle found in the nucleus of an atom?",
					Options: []string{"Neutron", "Proton", "Electron", "Photon"},
					Answer:  "Neutron",
				},
				{
					Prompt:  "In which city would you find the Colosseum?",
					Options: []string{"Rome", "Athens", "London", "Cairo"},
					Answer:  "Rome",
				},
			},
		},
		{
			ID:   "history",
			Name: "History Highlights",
			Icon: "⏳",
			Questions: []Question{
				{
					Prompt:  "Who was the first president of the United States?",
					Options: []string{"George Washington", "Thomas Jefferson", "Abraham Lincoln", "John Adams"},
					Answer:  "George Washington",
				},
				{
					Prompt:  "Which ancient civilization built the pyramids?",
					Options: []string{"Egyptians", "Romans", "Greeks", "Mayans"},
					Answer:  "Egyptians",
				},
				{
					Prompt:  "What year did the Titanic sink?",
					Options: []string{"1912", "1905", "1920", "1918"},
					Answer:  "1912",
				},
				{
					Prompt:  "Who discovered America in 1492?",
					Options: []string{"Christopher Columbus", "Ferdinand Magellan", "Marco Polo", "Vasco da Gama"},
					Answer:  "Christopher Columbus",
				},
				{
					Prompt:  "Which war was fought between the North and South regions of the United States?",
					Options: []string{"Civil War", "World War I", "Revolutionary War", "Cold War"},
					Answer:  "Civil War",
				},
				{
					Prompt:  "What was the primary weapon of medieval knights?",
					Options: []string{"Sword", "Bow and arrow", "Spear", "Axe"},
					Answer:  "Sword",
				},
				{
					Prompt:  "Who was a famous queen of ancient Egypt, known for her beauty and power?",
					Options: []string{"Cleopatra", "Nefertiti", "Hatshepsut", "Ankhesenamun"},
					Answer:  "Cleopatra",
				},
				{
					Prompt:  "Which continent is home to the Great Wall of China?",
					Options: []string{"Asia", "Europe", "Africa", "North America"},
					Answer:  "Asia",
				},
				{
					Prompt:  "Who invented the light bulb?",
					Options: []string{"Thomas Edison", "Alexander Graham Bell", "Isaac Newton", "Marie Curie"},
					Answer:  "Thomas Edison",
				},
				{
					Prompt:  "What was the name of the first man on the moon?",
					Options: []string{"Neil Armstrong", "Buzz Aldrin", "Yuri Gagarin", "Michael Collins"},
					Answer:  "Neil Armstrong",
				},
			},
		},
	}
}
