package initializers

import (
	"log"

	"github.com/shreeambika/easyshop-api/models"
	"gorm.io/gorm/clause"
)

var seedCategories = []models.Category{
	{ID: "plywood", Name: "Plywood", Icon: "Layers", Description: "Premium quality plywood sheets for all your construction needs", Image: "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400&h=300&fit=crop"},
	{ID: "laminates", Name: "Laminates", Icon: "Palette", Description: "Decorative laminates in various colors and textures", Image: "https://images.unsplash.com/photo-1615971677499-5467cbab01c0?w=400&h=300&fit=crop"},
	{ID: "hardware-tools", Name: "Tools", Icon: "Wrench", Description: "Professional grade tools for every project", Image: "https://images.unsplash.com/photo-1504148455328-c376907d081c?w=400&h=300&fit=crop"},
	{ID: "door-handles", Name: "Door Handles & Locks", Icon: "DoorOpen", Description: "Stylish and secure door hardware solutions", Image: "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400&h=300&fit=crop"},
	{ID: "fittings", Name: "Plumbing Accessories", Icon: "Cog", Description: "Essential fittings for all construction work", Image: "https://images.unsplash.com/photo-1586864387967-d02ef85d93e8?w=400&h=300&fit=crop"},
}

var seedProducts = []models.Product{
	{ID: "fevicol-sh", Name: "Fevicol SH", Price: 800, Category: "fittings", Image: "/fevicol-sh.png", Description: "High-quality synthetic resin adhesive for plywood, laminate, MDF and woodworking applications", Size: "5kg", ImageFit: "contain"},
	{ID: "ply-1", Name: "Commercial Plywood 18mm", Price: 1850, Category: "plywood", Image: "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400&h=400&fit=crop", Description: "High-quality commercial plywood suitable for furniture and interiors", Size: "8x4 feet", Thickness: "18mm"},
	{ID: "ply-2", Name: "Marine Plywood 19mm", Price: 3200, Category: "plywood", Image: "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400&h=400&fit=crop", Description: "Water-resistant marine plywood for outdoor and wet areas", Size: "8x4 feet", Thickness: "19mm"},
	{ID: "ply-3", Name: "BWR Plywood 12mm", Price: 1450, Category: "plywood", Image: "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400&h=400&fit=crop", Description: "Boiling Water Resistant plywood for kitchen cabinets", Size: "8x4 feet", Thickness: "12mm"},
	{ID: "lam-1", Name: "Sunmica Sheet - Walnut", Price: 850, Category: "laminates", Image: "https://images.unsplash.com/photo-1615971677499-5467cbab01c0?w=400&h=400&fit=crop", Description: "Premium decorative laminate with walnut wood finish", Size: "8x4 feet", Thickness: "1mm"},
	{ID: "lam-2", Name: "High Gloss White Laminate", Price: 1100, Category: "laminates", Image: "https://images.unsplash.com/photo-1615971677499-5467cbab01c0?w=400&h=400&fit=crop", Description: "Glossy white laminate for modern kitchen designs", Size: "8x4 feet", Thickness: "1mm"},
	{ID: "tool-1", Name: "Professional Drill Machine", Price: 2800, Category: "hardware-tools", Image: "https://images.unsplash.com/photo-1504148455328-c376907d081c?w=400&h=400&fit=crop", Description: "750W professional drill with variable speed control"},
	{ID: "tool-2", Name: "Circular Saw 7 inch", Price: 4500, Category: "hardware-tools", Image: "https://images.unsplash.com/photo-1504148455328-c376907d081c?w=400&h=400&fit=crop", Description: "Heavy duty circular saw for wood cutting"},
	{ID: "tool-3", Name: "Hammer Set (3 piece)", Price: 650, Category: "hardware-tools", Image: "https://images.unsplash.com/photo-1504148455328-c376907d081c?w=400&h=400&fit=crop", Description: "Professional hammer set with comfortable grip"},
	{ID: "door-1", Name: "Brass Door Handle Set", Price: 1200, Category: "door-handles", Image: "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400&h=400&fit=crop", Description: "Elegant brass door handle with lock mechanism"},
	{ID: "door-2", Name: "Digital Door Lock", Price: 8500, Category: "door-handles", Image: "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400&h=400&fit=crop", Description: "Smart digital door lock with fingerprint and password"},
	{ID: "fit-1", Name: "Wood Screws Box (100pc)", Price: 180, Category: "fittings", Image: "https://images.unsplash.com/photo-1586864387967-d02ef85d93e8?w=400&h=400&fit=crop", Description: "Stainless steel wood screws, 2 inch length"},
	{ID: "fit-2", Name: "Cabinet Hinges (4pc)", Price: 320, Category: "fittings", Image: "https://images.unsplash.com/photo-1586864387967-d02ef85d93e8?w=400&h=400&fit=crop", Description: "Soft-close cabinet hinges, premium quality"},
	{ID: "fit-3", Name: "Drawer Slides Pair", Price: 450, Category: "fittings", Image: "https://images.unsplash.com/photo-1586864387967-d02ef85d93e8?w=400&h=400&fit=crop", Description: "Ball bearing drawer slides, 18 inch"},
	{ID: "roff-t01", Name: "Roff T01 Tile Adhesive", Price: 500, Category: "fittings", Image: "/roff-adhesive.png", Description: "High-strength cement-based adhesive for new construction", Size: "20kg", ImageFit: "contain"},
	{ID: "dr-fixit-201", Name: "Dr. Fixit 201 - Crack-X Paste", Price: 0, Category: "fittings", Image: "/dr-fixit.png", Description: "High-quality ready-to-use crack filling paste suitable for internal walls and plaster.", Size: "500g", ImageFit: "contain"},
	{ID: "finolex-pipe", Name: "Finolex SWR Pipe", Price: 450, Category: "fittings", Image: "/finolex-pipes.png", Description: "Superior quality SWR pipes with UV resistance for long-lasting drainage systems", Size: "10 ft", ImageFit: "contain"},
	{ID: "astral-pipe", Name: "Astral CPVC Pro Pipe", Price: 350, Category: "fittings", Image: "/astral-pipes.png", Description: "Lead-free CPVC pipes for hot and cold water plumbing systems", Size: "10 ft", ImageFit: "contain"},
	{ID: "premium-plywood", Name: "Premium Gurjan Plywood", Price: 3200, Category: "plywood", Image: "/plywood.jpg", Description: "Termite and borer resistant premium grade plywood for furniture", Size: "8x4 feet", Thickness: "19mm", ImageFit: "cover"},
	{ID: "dongcheng-grinder", Name: "DongCheng Angle Grinder", Price: 2200, Category: "hardware-tools", Image: "/dongcheng.png", Description: "Heavy-duty 850W angle grinder for cutting and grinding applications", ImageFit: "contain"},
}

// SeedCatalog inserts the static catalog, the default UPI setting and the
// banner row. Existing rows are left untouched so admin edits survive
// restarts.
func SeedCatalog() {
	for _, category := range seedCategories {
		if err := DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&category).Error; err != nil {
			log.Println("Failed to seed category:", category.ID, err)
		}
	}

	for _, product := range seedProducts {
		if err := DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&product).Error; err != nil {
			log.Println("Failed to seed product:", product.ID, err)
		}
	}

	setting := models.Setting{KeyName: models.SettingUPIID, Value: "shreeambika@oksbi"}
	if err := DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&setting).Error; err != nil {
		log.Println("Failed to seed UPI setting:", err)
	}

	banner := models.Banner{ID: 1, Text: "", Color: "", Visible: false}
	if err := DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&banner).Error; err != nil {
		log.Println("Failed to seed banner:", err)
	}

	log.Println("Catalog seed complete.")
}
