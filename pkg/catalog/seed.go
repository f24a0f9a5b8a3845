package catalog

import "github.com/example/astroshop/pkg/models"

func seedProducts() []models.Product {
	return []models.Product{
		{
			ID:              "1",
			Name:            "7 Mukhi Rudraksha",
			Description:     "Brings wealth and prosperity, associated with Goddess Mahalaxmi.",
			LongDescription: "The 7 Mukhi Rudraksha is a powerful and auspicious bead that represents the seven divine mothers and is blessed by Goddess Mahalaxmi. It is known to bestow wealth, prosperity, and good fortune upon the wearer, helps in overcoming financial difficulties and brings new opportunities for success.",
			Price:           49.99,
			Category:        models.CategoryRudraksha,
			Image:           models.ProductImage{Src: "/images/product-1.jpg", Alt: "Seven faced rudraksha bead"},
		},
		{
			ID:              "2",
			Name:            "Blue Sapphire (Neelam)",
			Description:     "A powerful gemstone for Saturn, offering protection and rapid success.",
			LongDescription: "Blue Sapphire, or Neelam, is one of the fastest-acting and most powerful gemstones. Associated with the planet Saturn, it can bring immense wealth, fame, and success, and is a highly protective stone guarding against envy, enemies, and unforeseen dangers.",
			Price:           299.99,
			Category:        models.CategoryStone,
			Image:           models.ProductImage{Src: "/images/product-2.jpg", Alt: "Blue sapphire gemstone"},
		},
		{
			ID:              "3",
			Name:            "Crystal Healing Wand",
			Description:     "Focuses and directs energy, ideal for meditation and healing.",
			LongDescription: "This crystal healing wand is made from pure, high-vibration quartz. Wands focus and direct energy through their tip, making them ideal for chakra balancing, energy cleansing, meditation, and spiritual healing practices.",
			Price:           75.5,
			Category:        models.CategoryHealth,
			Image:           models.ProductImage{Src: "/images/product-3.jpg", Alt: "Quartz crystal wand"},
		},
		{
			ID:              "4",
			Name:            "Zodiac Constellation Necklace",
			Description:     "A stylish gold-plated necklace featuring your own zodiac constellation.",
			LongDescription: "This elegant gold-plated necklace features a delicate pendant with your chosen zodiac constellation, studded with tiny cubic zirconia crystals to represent the stars. A personal and meaningful piece that connects you to your astrological sign.",
			Price:           89.0,
			Category:        models.CategoryBracelet,
			Image:           models.ProductImage{Src: "/images/product-4.jpg", Alt: "Gold zodiac constellation necklace"},
		},
		{
			ID:              "5",
			Name:            "Amethyst Geode",
			Description:     "A stunning natural decor piece that calms the mind and spirit.",
			LongDescription: "This large Amethyst geode is a breathtaking piece of natural art. Amethyst is known for its calming and spiritual properties, believed to reduce stress, soothe irritability, and dispel negativity, creating a tranquil atmosphere conducive to meditation.",
			Price:           150.0,
			Category:        models.CategoryStone,
			Image:           models.ProductImage{Src: "/images/product-5.jpg", Alt: "Purple amethyst geode"},
		},
		{
			ID:              "6",
			Name:            "Astrology Tarot Deck",
			Description:     "A 78-card tarot deck infused with astrological symbolism.",
			LongDescription: "Deepen your tarot readings with this unique deck that merges traditional tarot archetypes with the wisdom of astrology. Each card is rich with celestial imagery, planetary symbols, and zodiacal correlations for more insightful interpretations.",
			Price:           39.99,
			Category:        models.CategoryTemple,
			Image:           models.ProductImage{Src: "/images/product-6.jpg", Alt: "Astrology themed tarot cards"},
		},
		{
			ID:              "7",
			Name:            "Tibetan Singing Bowl",
			Description:     "Hand-hammered bowl for sound healing and meditation.",
			LongDescription: "Create resonant, healing sounds with this authentic Tibetan singing bowl, hand-hammered by artisans in Nepal. Its complex harmonics promote deep relaxation and are ideal for sound therapy, meditation, and mindfulness practices.",
			Price:           120.0,
			Category:        models.CategoryTemple,
			Image:           models.ProductImage{Src: "/images/product-7.jpg", Alt: "Bronze singing bowl with mallet"},
		},
		{
			ID:              "8",
			Name:            "Emerald (Panna)",
			Description:     "Represents the planet Mercury, enhancing intellect and communication.",
			LongDescription: "Emerald, also known as Panna, is a precious gemstone associated with the planet Mercury. It is believed to enhance intellect, memory, communication skills, and intuition, and is often worn by students, artists, and business people to foster creativity and success.",
			Price:           250.0,
			Category:        models.CategoryStone,
			Image:           models.ProductImage{Src: "/images/product-8.jpg", Alt: "Green emerald gemstone"},
		},
	}
}
