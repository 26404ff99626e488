package catalog

// festivalEvents is the static Virasat festival programme: 56 events across
// fourteen numbered days plus the concluding day. Content only; all logic
// lives in the accessors and the query engine.
var festivalEvents = []Event{
	{ID: 1, Day: "Day 1", Date: "Nov 1", Title: "Inaugural Shehnai Recital", Description: "The festival opens with a traditional shehnai invocation by the Benares gharana ensemble.", Image: "/images/events/shehnai-opening.jpg", Time: "6:00 PM", Location: "Main Stage", Seats: "Limited seats", Price: "₹500 onwards", Featured: true, Category: "Classical Music", Duration: "90 min"},
	{ID: 2, Day: "Day 1", Date: "Nov 1", Title: "Phulkari Embroidery Workshop", Description: "Hands-on introduction to Punjab's famed phulkari needlework with master craftswomen from Patiala.", Image: "/images/events/phulkari.jpg", Time: "10:00 AM", Location: "Craft Village", Seats: "30 seats per batch", Price: "₹300", Featured: false, Category: "Craft Workshop", Duration: "2 hours"},
	{ID: 3, Day: "Day 1", Date: "Nov 1", Title: "Heritage Walk: Old City Gates", Description: "A guided evening walk tracing the walled city's seven surviving gates and their stories.", Image: "/images/events/heritage-walk.jpg", Time: "4:00 PM", Location: "Clock Tower Meeting Point", Seats: "Open registration", Price: "₹150", Featured: false, Category: "Heritage Walk", Duration: "2 hours"},
	{ID: 4, Day: "Day 1", Date: "Nov 1", Title: "Street Food Trail", Description: "Curated tasting trail through the festival food lanes, from Amritsari kulcha to jalebi.", Image: "/images/events/food-trail.jpg", Time: "7:30 PM", Location: "Food Court", Seats: "Open entry", Price: "₹400", Featured: false, Category: "Culinary"},
	{ID: 5, Day: "Day 2", Date: "Nov 2", Title: "Kathak by Lucknow Gharana", Description: "An evening of pure-dance and expressional kathak led by senior disciples of the Lucknow lineage.", Image: "/images/events/kathak.jpg", Time: "6:30 PM", Location: "Main Stage", Seats: "Filling fast", Price: "₹600 onwards", Featured: true, Category: "Classical Dance", Duration: "2 hours"},
	{ID: 6, Day: "Day 2", Date: "Nov 2", Title: "Qawwali Night: Rung", Description: "Sufi qawwali in the tradition of the Delhi khanqahs, with harmonium, tabla and twelve voices.", Image: "/images/events/qawwali.jpg", Time: "8:30 PM", Location: "Amphitheatre", Seats: "Limited seats", Price: "₹450", Featured: true, Category: "Sufi Music", Duration: "2 hours"},
	{ID: 7, Day: "Day 2", Date: "Nov 2", Title: "Blue Pottery Demonstration", Description: "Jaipur artisans demonstrate the Persian-origin craft of blue pottery, from quartz dough to glaze.", Image: "/images/events/blue-pottery.jpg", Time: "11:00 AM", Location: "Craft Village", Seats: "Open entry", Price: "Free", Featured: false, Category: "Craft Workshop"},
	{ID: 8, Day: "Day 2", Date: "Nov 2", Title: "Punjabi Folk Tales for Children", Description: "Storytellers bring alive Heer-Ranjha and the wit of Bhua-ji's courtyard tales.", Image: "/images/events/folk-tales.jpg", Time: "5:00 PM", Location: "Literature Tent", Seats: "80 seats", Price: "₹100", Featured: false, Category: "Literature", AgeRestriction: "Recommended 6+"},
	{ID: 9, Day: "Day 3", Date: "Nov 3", Title: "Dhrupad Vocal Recital", Description: "The oldest surviving form of Hindustani vocal music, presented with pakhawaj accompaniment.", Image: "/images/events/dhrupad.jpg", Time: "7:00 PM", Location: "Main Stage", Seats: "Limited seats", Price: "₹500 onwards", Featured: false, Category: "Classical Music", Duration: "2 hours"},
	{ID: 10, Day: "Day 3", Date: "Nov 3", Title: "Giddha and Bhangra Showcase", Description: "High-energy folk dance troupes from Malwa and Majha regions battle it out on the open stage.", Image: "/images/events/bhangra.jpg", Time: "6:00 PM", Location: "Open Grounds", Seats: "Open entry", Price: "Free", Featured: true, Category: "Folk Dance", Duration: "90 min"},
	{ID: 11, Day: "Day 3", Date: "Nov 3", Title: "Miniature Painting Masterclass", Description: "Kangra school miniaturists teach brush-making, pigment grinding and the iconography of ragamala.", Image: "/images/events/miniature.jpg", Time: "10:30 AM", Location: "Craft Village", Seats: "20 seats", Price: "₹800", Featured: false, Category: "Craft Workshop", Duration: "3 hours"},
	{ID: 12, Day: "Day 3", Date: "Nov 3", Title: "Documentary: Weavers of the Valley", Description: "Screening of an award-winning documentary on Kashmiri kani shawl weavers, followed by a director Q&A.", Image: "/images/events/weavers-doc.jpg", Time: "4:30 PM", Location: "Cinema Tent", Seats: "120 seats", Price: "₹200", Featured: false, Category: "Film Screening", Duration: "100 min"},
	{ID: 13, Day: "Day 4", Date: "Nov 4", Title: "Santoor Recital at Dawn", Description: "A rare early-morning raga cycle on the hundred-stringed santoor, with herbal tea service.", Image: "/images/events/santoor.jpg", Time: "6:00 AM", Location: "Riverside Pavilion", Seats: "Limited seats", Price: "₹350", Featured: false, Category: "Classical Music", Duration: "90 min"},
	{ID: 14, Day: "Day 4", Date: "Nov 4", Title: "Kalbelia Dance of Rajasthan", Description: "The serpentine folk dance of the Kalbelia community, a UNESCO-listed intangible heritage.", Image: "/images/events/kalbelia.jpg", Time: "7:00 PM", Location: "Amphitheatre", Seats: "Filling fast", Price: "₹400", Featured: false, Category: "Folk Dance", Duration: "75 min"},
	{ID: 15, Day: "Day 4", Date: "Nov 4", Title: "Poetry Evening: Punjabi Sufiana", Description: "Readings of Bulleh Shah, Shah Hussain and Waris Shah with live sarangi interludes.", Image: "/images/events/sufi-poetry.jpg", Time: "5:30 PM", Location: "Literature Tent", Seats: "100 seats", Price: "₹150", Featured: false, Category: "Literature", Duration: "2 hours"},
	{ID: 16, Day: "Day 4", Date: "Nov 4", Title: "Heritage Cuisine Masterclass", Description: "Royal kitchens of Patiala: a chef-led masterclass on slow-cooked heritage recipes.", Image: "/images/events/cuisine-class.jpg", Time: "12:00 PM", Location: "Food Court Studio", Seats: "25 seats", Price: "₹900", Featured: false, Category: "Culinary", Duration: "2 hours"},
	{ID: 17, Day: "Day 5", Date: "Nov 5", Title: "Sitar and Tabla Jugalbandi", Description: "A celebrated duo in conversation: raga elaboration answered by rhythmic improvisation.", Image: "/images/events/jugalbandi.jpg", Time: "7:30 PM", Location: "Main Stage", Seats: "Limited seats", Price: "₹700 onwards", Featured: true, Category: "Classical Music", Duration: "2 hours"},
	{ID: 18, Day: "Day 5", Date: "Nov 5", Title: "Puppet Theatre: Amar Singh Rathore", Description: "Traditional kathputli string puppetry from Rajasthan narrating the legend of Amar Singh.", Image: "/images/events/kathputli.jpg", Time: "5:00 PM", Location: "Children's Pavilion", Seats: "Open entry", Price: "₹100", Featured: false, Category: "Puppetry", Duration: "60 min"},
	{ID: 19, Day: "Day 5", Date: "Nov 5", Title: "Block Printing Workshop", Description: "Carve, ink and print your own textile panel using Sanganeri wooden blocks and natural dyes.", Image: "/images/events/block-print.jpg", Time: "10:00 AM", Location: "Craft Village", Seats: "30 seats per batch", Price: "₹350", Featured: false, Category: "Craft Workshop", Duration: "2 hours"},
	{ID: 20, Day: "Day 5", Date: "Nov 5", Title: "Theatre: Ghadar di Gunj", Description: "A period drama on the Ghadar movement staged by the Punjab repertory company.", Image: "/images/events/ghadar.jpg", Time: "8:00 PM", Location: "Theatre Tent", Seats: "150 seats", Price: "₹300", Featured: false, Category: "Theatre", Duration: "110 min", AgeRestriction: "12+"},
	{ID: 21, Day: "Day 6", Date: "Nov 6", Title: "Carnatic Violin Recital", Description: "A southern classical tradition visits the festival: kritis of Tyagaraja on solo violin.", Image: "/images/events/carnatic-violin.jpg", Time: "6:30 PM", Location: "Riverside Pavilion", Seats: "Limited seats", Price: "₹400", Featured: false, Category: "Classical Music", Duration: "90 min"},
	{ID: 22, Day: "Day 6", Date: "Nov 6", Title: "Sufi Kalam by Wadali Lineage", Description: "Disciples of the Wadali brothers present kalams of Baba Farid and Khwaja Ghulam Farid.", Image: "/images/events/wadali.jpg", Time: "8:30 PM", Location: "Main Stage", Seats: "Filling fast", Price: "₹600 onwards", Featured: true, Category: "Sufi Music", Duration: "2 hours"},
	{ID: 23, Day: "Day 6", Date: "Nov 6", Title: "Vintage Photography Exhibition Walk", Description: "Curator-led walk through a hundred years of festival photography, glass plates to film.", Image: "/images/events/photo-walk.jpg", Time: "11:00 AM", Location: "Gallery Pavilion", Seats: "Open entry", Price: "Free", Featured: false, Category: "Photography"},
	{ID: 24, Day: "Day 6", Date: "Nov 6", Title: "Langar: Community Kitchen Experience", Description: "Join the volunteer-run community kitchen and share a traditional langar meal.", Image: "/images/events/langar.jpg", Time: "1:00 PM", Location: "Community Grounds", Seats: "Open entry", Price: "Free", Featured: false, Category: "Culinary"},
	{ID: 25, Day: "Day 7", Date: "Nov 7", Title: "Odissi: Geeta Govinda", Description: "The ashtapadis of Jayadeva rendered in classical Odissi by a Bhubaneswar ensemble.", Image: "/images/events/odissi.jpg", Time: "7:00 PM", Location: "Main Stage", Seats: "Limited seats", Price: "₹500 onwards", Featured: false, Category: "Classical Dance", Duration: "100 min"},
	{ID: 26, Day: "Day 7", Date: "Nov 7", Title: "Naqqali: Epic Storytelling", Description: "The dying art of naqqali performance narration, presented with painted scroll backdrops.", Image: "/images/events/naqqali.jpg", Time: "5:30 PM", Location: "Literature Tent", Seats: "90 seats", Price: "₹150", Featured: false, Category: "Literature", Duration: "75 min"},
	{ID: 27, Day: "Day 7", Date: "Nov 7", Title: "Brass and Bell Metal Craft Demo", Description: "Thathera artisans of Jandiala Guru demonstrate hand-beaten brassware, a UNESCO-listed craft.", Image: "/images/events/thathera.jpg", Time: "10:30 AM", Location: "Craft Village", Seats: "Open entry", Price: "Free", Featured: false, Category: "Craft Workshop"},
	{ID: 28, Day: "Day 7", Date: "Nov 7", Title: "Folk Percussion Circle", Description: "Dhol, nagada and dafli players lead an open rhythm circle; instruments provided.", Image: "/images/events/percussion.jpg", Time: "4:00 PM", Location: "Open Grounds", Seats: "Open entry", Price: "₹200", Featured: false, Category: "Folk Music", Duration: "60 min"},
	{ID: 29, Day: "Day 8", Date: "Nov 8", Title: "Hindustani Vocal: Khayal Evening", Description: "A senior vocalist of the Kirana gharana presents slow-unfolding khayal in raga Yaman.", Image: "/images/events/khayal.jpg", Time: "7:00 PM", Location: "Main Stage", Seats: "Limited seats", Price: "₹550 onwards", Featured: true, Category: "Classical Music", Duration: "2 hours"},
	{ID: 30, Day: "Day 8", Date: "Nov 8", Title: "Chikankari: Thread and Shadow", Description: "Lucknow's shadow-work embroidery explained stitch by stitch, with a take-home sampler.", Image: "/images/events/chikankari.jpg", Time: "10:00 AM", Location: "Craft Village", Seats: "30 seats per batch", Price: "₹300", Featured: false, Category: "Craft Workshop", Duration: "2 hours"},
	{ID: 31, Day: "Day 8", Date: "Nov 8", Title: "Theatre: Ek Ruka Hua Faisla", Description: "The classic jury-room drama staged in the round by a Chandigarh theatre group.", Image: "/images/events/jury-play.jpg", Time: "8:00 PM", Location: "Theatre Tent", Seats: "150 seats", Price: "₹300", Featured: false, Category: "Theatre", Duration: "2 hours", AgeRestriction: "12+"},
	{ID: 32, Day: "Day 8", Date: "Nov 8", Title: "Heritage Walk: Stepwells and Springs", Description: "Morning walk to the restored stepwell precinct with a water-heritage conservationist.", Image: "/images/events/stepwell.jpg", Time: "7:30 AM", Location: "East Gate Meeting Point", Seats: "40 seats", Price: "₹150", Featured: false, Category: "Heritage Walk", Duration: "2 hours"},
	{ID: 33, Day: "Day 9", Date: "Nov 9", Title: "Sarod Recital", Description: "An evening sarod recital tracing the Senia-Bangash lineage through three generations of ragas.", Image: "/images/events/sarod.jpg", Time: "7:00 PM", Location: "Riverside Pavilion", Seats: "Limited seats", Price: "₹450", Featured: false, Category: "Classical Music", Duration: "90 min"},
	{ID: 34, Day: "Day 9", Date: "Nov 9", Title: "Gatka: Martial Arts Display", Description: "The Sikh martial tradition of gatka performed with swords, staffs and shields.", Image: "/images/events/gatka.jpg", Time: "5:00 PM", Location: "Open Grounds", Seats: "Open entry", Price: "Free", Featured: true, Category: "Folk Dance", Duration: "60 min"},
	{ID: 35, Day: "Day 9", Date: "Nov 9", Title: "Film: Stories in Stone", Description: "A restored print of the landmark documentary on temple architecture of the northern plains.", Image: "/images/events/stone-doc.jpg", Time: "4:30 PM", Location: "Cinema Tent", Seats: "120 seats", Price: "₹200", Featured: false, Category: "Film Screening", Duration: "85 min"},
	{ID: 36, Day: "Day 9", Date: "Nov 9", Title: "Pickle and Preserve Workshop", Description: "Winter pickling traditions of undivided Punjab: seasonal produce, mustard oil and patience.", Image: "/images/events/pickle.jpg", Time: "11:30 AM", Location: "Food Court Studio", Seats: "25 seats", Price: "₹500", Featured: false, Category: "Culinary", Duration: "90 min"},
	{ID: 37, Day: "Day 10", Date: "Nov 10", Title: "Bharatanatyam Margam", Description: "A full traditional margam from alarippu to tillana by a rising Chennai soloist.", Image: "/images/events/bharatanatyam.jpg", Time: "6:30 PM", Location: "Main Stage", Seats: "Limited seats", Price: "₹500 onwards", Featured: false, Category: "Classical Dance", Duration: "2 hours"},
	{ID: 38, Day: "Day 10", Date: "Nov 10", Title: "Sufi Whirling and Sama", Description: "A contemplative evening of sama with whirling dervishes visiting from Konya.", Image: "/images/events/sama.jpg", Time: "8:30 PM", Location: "Amphitheatre", Seats: "Filling fast", Price: "₹700", Featured: true, Category: "Sufi Music", Duration: "75 min"},
	{ID: 39, Day: "Day 10", Date: "Nov 10", Title: "Calligraphy: Gurmukhi and Shahmukhi", Description: "Learn the strokes of both scripts of Punjabi from practicing calligraphers.", Image: "/images/events/calligraphy.jpg", Time: "10:00 AM", Location: "Craft Village", Seats: "20 seats", Price: "₹400", Featured: false, Category: "Craft Workshop", Duration: "2 hours"},
	{ID: 40, Day: "Day 10", Date: "Nov 10", Title: "Open Mic: New Voices in Poetry", Description: "Young poets read new work in Punjabi, Hindi and Urdu; sign-up at the tent.", Image: "/images/events/open-mic.jpg", Time: "5:00 PM", Location: "Literature Tent", Seats: "Open entry", Price: "Free", Featured: false, Category: "Literature", Duration: "2 hours"},
	{ID: 41, Day: "Day 11", Date: "Nov 11", Title: "Flute Recital Under the Stars", Description: "Bansuri ragas of the night cycle performed in the open riverside pavilion.", Image: "/images/events/bansuri.jpg", Time: "9:00 PM", Location: "Riverside Pavilion", Seats: "Limited seats", Price: "₹400", Featured: false, Category: "Classical Music", Duration: "90 min"},
	{ID: 42, Day: "Day 11", Date: "Nov 11", Title: "Bhavai and Ghoomar Evening", Description: "Pot-balancing bhavai and swirling ghoomar from Rajasthani folk ensembles.", Image: "/images/events/ghoomar.jpg", Time: "6:00 PM", Location: "Open Grounds", Seats: "Open entry", Price: "Free", Featured: false, Category: "Folk Dance", Duration: "75 min"},
	{ID: 43, Day: "Day 11", Date: "Nov 11", Title: "Miniature Food Museum Tour", Description: "A walk through the festival's edible-heritage exhibit with its founding curator.", Image: "/images/events/food-museum.jpg", Time: "12:00 PM", Location: "Gallery Pavilion", Seats: "40 seats", Price: "₹250", Featured: false, Category: "Culinary", Duration: "60 min"},
	{ID: 44, Day: "Day 11", Date: "Nov 11", Title: "Theatre for Children: Panj Pani", Description: "A musical play about the five rivers, performed with shadow puppets and song.", Image: "/images/events/panj-pani.jpg", Time: "4:00 PM", Location: "Children's Pavilion", Seats: "100 seats", Price: "₹150", Featured: false, Category: "Puppetry", Duration: "60 min", AgeRestriction: "Recommended 4+"},
	{ID: 45, Day: "Day 12", Date: "Nov 12", Title: "Veena Recital: Strings of the South", Description: "The Saraswati veena in a rare northern appearance, with mridangam accompaniment.", Image: "/images/events/veena.jpg", Time: "7:00 PM", Location: "Main Stage", Seats: "Limited seats", Price: "₹500 onwards", Featured: false, Category: "Classical Music", Duration: "100 min"},
	{ID: 46, Day: "Day 12", Date: "Nov 12", Title: "Weaving the Durrie", Description: "Pit-loom durrie weaving from start to finish; participants weave a bookmark to keep.", Image: "/images/events/durrie.jpg", Time: "10:30 AM", Location: "Craft Village", Seats: "25 seats", Price: "₹350", Featured: false, Category: "Craft Workshop", Duration: "2 hours"},
	{ID: 47, Day: "Day 12", Date: "Nov 12", Title: "Heritage Walk: Colonial Quarter", Description: "Twilight walk through the cantonment-era quarter with an architectural historian.", Image: "/images/events/colonial-walk.jpg", Time: "4:30 PM", Location: "Library Steps", Seats: "40 seats", Price: "₹150", Featured: false, Category: "Heritage Walk", Duration: "2 hours"},
	{ID: 48, Day: "Day 12", Date: "Nov 12", Title: "Folk Songs of the Harvest", Description: "Boliyan, tappe and jindua: the songs that carried Punjab's harvests, sung unamplified.", Image: "/images/events/harvest-songs.jpg", Time: "6:00 PM", Location: "Amphitheatre", Seats: "Open entry", Price: "₹200", Featured: false, Category: "Folk Music", Duration: "90 min"},
	{ID: 49, Day: "Day 13", Date: "Nov 13", Title: "Tabla Solo: Farukhabad Baaj", Description: "An evening-length tabla solo exploring the compositions of the Farukhabad gharana.", Image: "/images/events/tabla-solo.jpg", Time: "7:30 PM", Location: "Main Stage", Seats: "Limited seats", Price: "₹450 onwards", Featured: false, Category: "Classical Music", Duration: "90 min"},
	{ID: 50, Day: "Day 13", Date: "Nov 13", Title: "Grand Craft Bazaar Finale", Description: "Last full day of the craft bazaar with live demonstrations at every stall.", Image: "/images/events/bazaar.jpg", Time: "10:00 AM", Location: "Craft Village", Seats: "Open entry", Price: "Free", Featured: true, Category: "Craft Workshop"},
	{ID: 51, Day: "Day 13", Date: "Nov 13", Title: "Film: The Last Patola Weavers", Description: "Closing selection of the festival film programme, on the double-ikat weavers of Patan.", Image: "/images/events/patola.jpg", Time: "4:30 PM", Location: "Cinema Tent", Seats: "120 seats", Price: "₹200", Featured: false, Category: "Film Screening", Duration: "95 min"},
	{ID: 52, Day: "Day 13", Date: "Nov 13", Title: "Sufiana Mehfil by Lamplight", Description: "An intimate lamplit mehfil of kafis and ghazals in the courtyard setting.", Image: "/images/events/mehfil.jpg", Time: "8:30 PM", Location: "Courtyard Stage", Seats: "60 seats", Price: "₹800", Featured: false, Category: "Sufi Music", Duration: "2 hours"},
	{ID: 53, Day: "Day 14", Date: "Nov 14", Title: "All-Night Classical Sammelan", Description: "The festival's signature overnight concert: five artists, dusk to dawn ragas.", Image: "/images/events/sammelan.jpg", Time: "9:00 PM", Location: "Main Stage", Seats: "Filling fast", Price: "₹1000 onwards", Featured: true, Category: "Classical Music", Duration: "8 hours"},
	{ID: 54, Day: "Day 14", Date: "Nov 14", Title: "Community Folk Dance Evening", Description: "Open-floor giddha, bhangra and luddi for everyone, led by festival troupes.", Image: "/images/events/community-dance.jpg", Time: "6:00 PM", Location: "Open Grounds", Seats: "Open entry", Price: "Free", Featured: false, Category: "Folk Dance", Duration: "2 hours"},
	{ID: 55, Day: "Concluding Day", Date: "Nov 15", Title: "Closing Ceremony and Awards", Description: "Felicitation of participating artisans and artists, with a massed shabad chorus.", Image: "/images/events/closing.jpg", Time: "5:00 PM", Location: "Main Stage", Seats: "Limited seats", Price: "₹300", Featured: true, Category: "Classical Music", Duration: "2 hours"},
	{ID: 56, Day: "Concluding Day", Date: "Nov 15", Title: "Farewell Fireworks and Folk Finale", Description: "The festival bows out with a combined folk ensemble performance and fireworks over the river.", Image: "/images/events/fireworks.jpg", Time: "8:00 PM", Location: "Riverside Grounds", Seats: "Open entry", Price: "Free", Featured: true, Category: "Folk Music", Duration: "60 min"},
}
