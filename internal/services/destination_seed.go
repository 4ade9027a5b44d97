package services

import "dasilari/internal/models/db_models"

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// seedDestinations is the curated Da Lat catalog loaded once via the seed
// endpoint. Immutable reference data after that.
var seedDestinations = []db_models.Destination{
	{
		Name:          "Hồ Xuân Hương",
		Location:      "Center of Da Lat",
		Category:      db_models.CategoryFamous,
		PhotoSpot:     true,
		EstimatedCost: floatPtr(0),
		EstimatedTime: intPtr(90),
		Description:   "Beautiful lake in the heart of Da Lat, perfect for walking and swan boat rides. Free entry with stunning views.",
	},
	{
		Name:          "Lang Biang Mountain",
		Location:      "12km north of Da Lat",
		Category:      db_models.CategoryFamous,
		PhotoSpot:     true,
		EstimatedCost: floatPtr(70000),
		EstimatedTime: intPtr(240),
		Description:   "The highest peak in Da Lat at 2,167m. Jeep tours available or hiking to the summit for panoramic views.",
	},
	{
		Name:          "Thung Lũng Tình Yêu (Valley of Love)",
		Location:      "5km north of Da Lat",
		Category:      db_models.CategoryFamous,
		PhotoSpot:     true,
		EstimatedCost: floatPtr(50000),
		EstimatedTime: intPtr(120),
		Description:   "Romantic valley with gardens, lakes, and colorful flower displays. Popular for couples and photography.",
	},
	{
		Name:          "The Florest",
		Location:      "Trần Hưng Đạo, Da Lat",
		Category:      db_models.CategoryLocal,
		PhotoSpot:     true,
		EstimatedCost: floatPtr(50000),
		EstimatedTime: intPtr(90),
		Description:   "Instagram-worthy garden café with European-style architecture and beautiful flower arrangements.",
	},
	{
		Name:          "God Valley (Thung Lũng Vàng)",
		Location:      "20km from Da Lat center",
		Category:      db_models.CategoryLocal,
		PhotoSpot:     true,
		EstimatedCost: floatPtr(100000),
		EstimatedTime: intPtr(180),
		Description:   "Hidden gem with golden grass fields, perfect for photography and peaceful nature walks.",
	},
	{
		Name:          "Crazy House (Hằng Nga Villa)",
		Location:      "3 Huỳnh Thúc Kháng, Da Lat",
		Category:      db_models.CategoryFamous,
		PhotoSpot:     true,
		EstimatedCost: floatPtr(80000),
		EstimatedTime: intPtr(60),
		Description:   "Unique architectural wonder designed by architect Đặng Việt Nga. Surreal fairy-tale structures.",
	},
	{
		Name:          "Datanla Waterfall",
		Location:      "5km south of Da Lat",
		Category:      db_models.CategoryFamous,
		PhotoSpot:     true,
		EstimatedCost: floatPtr(50000),
		EstimatedTime: intPtr(120),
		Description:   "Popular waterfall with alpine coaster rides and adventure activities. Great for thrill-seekers.",
	},
	{
		Name:          "Da Lat Night Market",
		Location:      "Nguyễn Thị Minh Khai, Da Lat",
		Category:      db_models.CategoryLocal,
		PhotoSpot:     false,
		EstimatedCost: floatPtr(100000),
		EstimatedTime: intPtr(120),
		Description:   "Vibrant night market with local street food, souvenirs, and warm clothing. Best visited after 6 PM.",
	},
	{
		Name:          "Trúc Lâm Zen Monastery",
		Location:      "Phường 3, Da Lat",
		Category:      db_models.CategoryFamous,
		PhotoSpot:     true,
		EstimatedCost: floatPtr(0),
		EstimatedTime: intPtr(90),
		Description:   "Peaceful Buddhist monastery on Tuyền Lâm Lake. Cable car ride offers stunning views.",
	},
	{
		Name:          "Da Lat Railway Station",
		Location:      "1 Quang Trung, Da Lat",
		Category:      db_models.CategoryFamous,
		PhotoSpot:     true,
		EstimatedCost: floatPtr(0),
		EstimatedTime: intPtr(45),
		Description:   "Historic French colonial railway station built in 1932. Beautiful architecture and vintage trains.",
	},
	{
		Name:          "Bảo Đại Summer Palace",
		Location:      "Triệu Việt Vương, Da Lat",
		Category:      db_models.CategoryFamous,
		PhotoSpot:     true,
		EstimatedCost: floatPtr(30000),
		EstimatedTime: intPtr(60),
		Description:   "Former summer residence of Vietnam's last emperor. Art Deco architecture with historical artifacts.",
	},
	{
		Name:          "XQ Historical Village",
		Location:      "01 Huỳnh Thúc Kháng, Da Lat",
		Category:      db_models.CategoryLocal,
		PhotoSpot:     true,
		EstimatedCost: floatPtr(0),
		EstimatedTime: intPtr(60),
		Description:   "Hand-embroidery art gallery showcasing Vietnamese silk art. Free entry with stunning artworks.",
	},
	{
		Name:          "Linh Phước Pagoda",
		Location:      "120 Tự Phước, Trại Mát",
		Category:      db_models.CategoryFamous,
		PhotoSpot:     true,
		EstimatedCost: floatPtr(0),
		EstimatedTime: intPtr(45),
		Description:   "Stunning pagoda decorated with mosaic glass and ceramic. Features a 49-meter dragon sculpture.",
	},
	{
		Name:          "Da Lat Flower Gardens",
		Location:      "2 Phù Đổng Thiên Vương, Da Lat",
		Category:      db_models.CategoryFamous,
		PhotoSpot:     true,
		EstimatedCost: floatPtr(60000),
		EstimatedTime: intPtr(90),
		Description:   "Expansive gardens with diverse flower species, topiary, and themed sections. Perfect for flower lovers.",
	},
	{
		Name:          "Mê Linh Coffee Garden",
		Location:      "1A Bùi Thị Xuân, Da Lat",
		Category:      db_models.CategoryLocal,
		PhotoSpot:     true,
		EstimatedCost: floatPtr(80000),
		EstimatedTime: intPtr(90),
		Description:   "Scenic coffee plantation and garden café. Learn about coffee production while enjoying the view.",
	},
	{
		Name:          "Elephant Falls",
		Location:      "30km southwest of Da Lat",
		Category:      db_models.CategoryFamous,
		PhotoSpot:     true,
		EstimatedCost: floatPtr(20000),
		EstimatedTime: intPtr(150),
		Description:   "Impressive waterfall with powerful cascades. Requires some hiking but worth the adventure.",
	},
	{
		Name:          "Pongour Waterfall",
		Location:      "50km south of Da Lat",
		Category:      db_models.CategoryLocal,
		PhotoSpot:     true,
		EstimatedCost: floatPtr(20000),
		EstimatedTime: intPtr(180),
		Description:   "Majestic seven-tiered waterfall, often called the most beautiful in Da Lat. Best in rainy season.",
	},
	{
		Name:          "Ana Mandara Villas",
		Location:      "Lê Lai, Da Lat",
		Category:      db_models.CategoryLocal,
		PhotoSpot:     true,
		EstimatedCost: floatPtr(150000),
		EstimatedTime: intPtr(120),
		Description:   "French colonial villa complex with restaurants and spa. Experience luxury and history.",
	},
	{
		Name:          "Clay Tunnel (Hầm Đất Sét)",
		Location:      "Lê Hồng Phong, Da Lat",
		Category:      db_models.CategoryLocal,
		PhotoSpot:     true,
		EstimatedCost: floatPtr(100000),
		EstimatedTime: intPtr(90),
		Description:   "Unique clay sculpture tunnel and art space. Creative and quirky attraction perfect for Instagram.",
	},
	{
		Name:          "Da Lat Market",
		Location:      "Nguyễn Thị Minh Khai, Da Lat",
		Category:      db_models.CategoryLocal,
		PhotoSpot:     false,
		EstimatedCost: floatPtr(50000),
		EstimatedTime: intPtr(90),
		Description:   "Traditional market selling fresh produce, flowers, local delicacies, and souvenirs. Authentic local experience.",
	},
}
