package datasource

import (
	"time"

	"github.com/Adarshk-afk/Bitehub/models"
	"github.com/google/uuid"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

// catalogProducts is the seed catalog. Ids are assigned in release order,
// which is why "newest" sorting works off the id.
func catalogProducts() []models.Product {
	return []models.Product{
		{
			ID: 1, Name: "iPhone 15 Pro Max", Brand: "Apple", Category: "smartphones",
			Price: models.ScalarPrice(1199), OriginalPrice: floatPtr(1299), Discount: intPtr(8),
			Rating: 4.8, ReviewCount: 2847,
			Image:       "https://images.unsplash.com/photo-1592750475338-74b7b21085ab?w=400&h=400&fit=crop",
			Description: "The most advanced iPhone with titanium design, A17 Pro chip, and professional camera system.",
			Badge:       "New",
			Features:    models.FeatureList{"5g-ready", "wireless-charging", "face-unlock", "fast-charging"},
			AffiliateLink: "https://apple.com/iphone-15-pro",
		},
		{
			ID: 2, Name: "Samsung Galaxy S24 Ultra", Brand: "Samsung", Category: "smartphones",
			Price: models.RangePrice(999, 1399),
			Rating: 4.7, ReviewCount: 1923,
			Image:       "https://images.unsplash.com/photo-1610945265064-0e34e5519bbf?w=400&h=400&fit=crop",
			Description: "Premium Android flagship with S Pen, 200MP camera, and AI-powered features.",
			Badge:       "Sale",
			Features:    models.FeatureList{"5g-ready", "wireless-charging", "fingerprint", "fast-charging"},
			AffiliateLink: "https://samsung.com/galaxy-s24-ultra",
		},
		{
			ID: 3, Name: "MacBook Air M3", Brand: "Apple", Category: "laptops",
			Price: models.RangePrice(1099, 1699),
			Rating: 4.9, ReviewCount: 1456,
			Image:       "https://images.unsplash.com/photo-1541807084-5c52b6b3adef?w=400&h=400&fit=crop",
			Description: "Ultra-thin laptop with M3 chip, all-day battery life, and stunning Liquid Retina display.",
			Features:    models.FeatureList{"fast-charging", "fingerprint"},
			AffiliateLink: "https://apple.com/macbook-air",
		},
		{
			ID: 4, Name: "Dell XPS 13 Plus", Brand: "Dell", Category: "laptops",
			Price: models.RangePrice(899, 1599), OriginalPrice: floatPtr(1199), Discount: intPtr(17),
			Rating: 4.6, ReviewCount: 892,
			Image:       "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=400&h=400&fit=crop",
			Description: "Premium ultrabook with 12th Gen Intel processors and InfinityEdge display.",
			Badge:       "Sale",
			Features:    models.FeatureList{"fingerprint", "fast-charging"},
			AffiliateLink: "https://dell.com/xps-13-plus",
		},
		{
			ID: 5, Name: "iPad Pro 12.9-inch", Brand: "Apple", Category: "tablets",
			Price: models.RangePrice(1099, 2199),
			Rating: 4.8, ReviewCount: 1234,
			Image:       "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?w=400&h=400&fit=crop",
			Description: "Most advanced iPad with M2 chip, Liquid Retina XDR display, and Apple Pencil support.",
			Features:    models.FeatureList{"wireless-charging", "face-unlock", "fast-charging"},
			AffiliateLink: "https://apple.com/ipad-pro",
		},
		{
			ID: 6, Name: "Sony WH-1000XM5", Brand: "Sony", Category: "headphones",
			Price: models.ScalarPrice(399), OriginalPrice: floatPtr(449), Discount: intPtr(11),
			Rating: 4.7, ReviewCount: 3421,
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400&h=400&fit=crop",
			Description: "Industry-leading noise canceling headphones with exceptional sound quality.",
			Badge:       "Popular",
			Features:    models.FeatureList{"noise-cancelling", "bluetooth", "fast-charging"},
			AffiliateLink: "https://sony.com/wh-1000xm5",
		},
		{
			ID: 7, Name: "Apple Watch Series 9", Brand: "Apple", Category: "smartwatches",
			Price: models.RangePrice(399, 799),
			Rating: 4.6, ReviewCount: 2156,
			Image:       "https://images.unsplash.com/photo-1434493789847-2f02dc6ca35d?w=400&h=400&fit=crop",
			Description: "Advanced health and fitness tracking with the most powerful Apple Watch chip.",
			Badge:       "New",
			Features:    models.FeatureList{"wireless-charging", "water-resistant", "fast-charging"},
			AffiliateLink: "https://apple.com/watch",
		},
		{
			ID: 8, Name: "Google Pixel 8 Pro", Brand: "Google", Category: "smartphones",
			Price: models.ScalarPrice(999),
			Rating: 4.5, ReviewCount: 1678,
			Image:       "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=400&h=400&fit=crop",
			Description: "AI-powered photography and the most helpful Google features built right in.",
			Features:    models.FeatureList{"5g-ready", "wireless-charging", "fingerprint", "face-unlock"},
			AffiliateLink: "https://store.google.com/pixel-8-pro",
		},
		{
			ID: 9, Name: "Microsoft Surface Laptop 5", Brand: "Microsoft", Category: "laptops",
			Price: models.ScalarPrice(1299),
			Rating: 4.4, ReviewCount: 756,
			Image:       "https://images.unsplash.com/photo-1588872657578-7efd1f1555ed?w=400&h=400&fit=crop",
			Description: "Sleek design meets powerful performance with 12th Gen Intel Core processors.",
			Features:    models.FeatureList{"fingerprint", "fast-charging"},
			AffiliateLink: "https://microsoft.com/surface-laptop-5",
		},
		{
			ID: 10, Name: "Samsung Galaxy Tab S9", Brand: "Samsung", Category: "tablets",
			Price: models.ScalarPrice(799), OriginalPrice: floatPtr(899), Discount: intPtr(11),
			Rating: 4.5, ReviewCount: 934,
			Image:       "https://images.unsplash.com/photo-1561154464-82e9adf32764?w=400&h=400&fit=crop",
			Description: "Premium Android tablet with S Pen included and DeX productivity features.",
			Badge:       "Sale",
			Features:    models.FeatureList{"5g-ready", "water-resistant", "fast-charging"},
			AffiliateLink: "https://samsung.com/galaxy-tab-s9",
		},
		{
			ID: 11, Name: "PlayStation 5 DualSense Controller", Brand: "Sony", Category: "gaming",
			Price: models.ScalarPrice(69),
			Rating: 4.6, ReviewCount: 4521,
			Image:       "https://images.unsplash.com/photo-1606144042614-b2417e99c4e3?w=400&h=400&fit=crop",
			Description: "Revolutionary gaming controller with haptic feedback and adaptive triggers.",
			Features:    models.FeatureList{"wireless-charging", "bluetooth"},
			AffiliateLink: "https://playstation.com/dualsense",
		},
		{
			ID: 12, Name: "Canon EOS R6 Mark II", Brand: "Canon", Category: "cameras",
			Price: models.ScalarPrice(2499),
			Rating: 4.8, ReviewCount: 567,
			Image:       "https://images.unsplash.com/photo-1502920917128-1aa500764cbd?w=400&h=400&fit=crop",
			Description: "Full-frame mirrorless camera with advanced autofocus and 4K video recording.",
			Features:    models.FeatureList{"water-resistant", "bluetooth"},
			AffiliateLink: "https://canon.com/eos-r6-mark-ii",
		},
	}
}

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// catalogReviews seeds the review store. Ids are fixed (not random) so the
// mock backend behaves identically across restarts.
func catalogReviews() []models.Review {
	return []models.Review{
		{
			ID: uuid.MustParse("018d6e60-0000-7000-8000-000000000001"), ProductID: 1,
			UserName: "Sarah Johnson", Rating: 5, Title: "Absolutely love this phone!",
			Content: "I've been using the iPhone 15 Pro for about 3 months now and I'm thoroughly impressed. " +
				"The camera quality is outstanding, especially in low light conditions. The titanium build feels premium and durable.",
			Pros:             models.StringList{"Excellent camera quality", "Premium build quality", "Great battery life", "Fast performance"},
			Cons:             models.StringList{"Gets warm during gaming", "Expensive"},
			Images:           models.StringList{"https://images.unsplash.com/photo-1592750475338-74b7b21085ab?w=400"},
			VerifiedPurchase: true, HelpfulCount: 24,
			CreatedAt: mustTime("2024-09-10T10:30:00Z"),
		},
		{
			ID: uuid.MustParse("018d6e60-0000-7000-8000-000000000002"), ProductID: 3,
			UserName: "Michael Chen", Rating: 4, Title: "Great laptop for productivity",
			Content: "The MacBook Air has been my daily driver for work and I'm really happy with it. " +
				"The chip is incredibly fast for my workflow which includes video editing, coding, and running multiple applications simultaneously.",
			Pros:             models.StringList{"Excellent performance", "Great battery life", "Beautiful display", "Silent operation"},
			Cons:             models.StringList{"Limited ports", "Notch can be distracting", "Expensive storage upgrades"},
			Images:           models.StringList{"https://images.unsplash.com/photo-1541807084-5c52b6b3adef?w=400"},
			VerifiedPurchase: true, HelpfulCount: 18,
			CreatedAt: mustTime("2024-09-08T14:15:00Z"),
		},
		{
			ID: uuid.MustParse("018d6e60-0000-7000-8000-000000000003"), ProductID: 6,
			UserName: "Emily Rodriguez", Rating: 5, Title: "Best noise-canceling headphones I've owned",
			Content: "These Sony headphones are absolutely incredible. The noise cancellation is so good that I can " +
				"barely hear anything around me when it's turned on. Perfect for flights and noisy environments.",
			Pros:             models.StringList{"Outstanding noise cancellation", "Excellent sound quality", "Very comfortable", "Long battery life"},
			Cons:             models.StringList{"Touch controls learning curve", "Expensive"},
			Images:           models.StringList{},
			VerifiedPurchase: true, HelpfulCount: 31,
			CreatedAt: mustTime("2024-09-05T09:45:00Z"),
		},
		{
			ID: uuid.MustParse("018d6e60-0000-7000-8000-000000000004"), ProductID: 2,
			UserName: "David Kim", Rating: 3, Title: "Good phone but has some issues",
			Content: "The Galaxy S24 Ultra is a powerful phone with an amazing display and camera system. " +
				"However, I've experienced some software bugs and the battery life isn't as good as I expected for such a large phone.",
			Pros:             models.StringList{"Great display", "Excellent cameras", "S Pen functionality"},
			Cons:             models.StringList{"Software bugs", "Average battery life", "Very expensive"},
			Images:           models.StringList{"https://images.unsplash.com/photo-1610945265064-0e34e5519bbf?w=400"},
			VerifiedPurchase: false, HelpfulCount: 12,
			CreatedAt: mustTime("2024-09-03T16:20:00Z"),
		},
		{
			ID: uuid.MustParse("018d6e60-0000-7000-8000-000000000005"), ProductID: 4,
			UserName: "Lisa Thompson", Rating: 4, Title: "Solid laptop for the price",
			Content: "The Dell XPS offers great value for money. Build quality is solid and the display is sharp " +
				"and vibrant. Performance is good for everyday tasks and light creative work.",
			Pros:             models.StringList{"Good value", "Solid build quality", "Nice display", "Decent performance"},
			Cons:             models.StringList{"Average battery life", "Gets warm", "Fan can be noisy"},
			Images:           models.StringList{},
			VerifiedPurchase: true, HelpfulCount: 8,
			CreatedAt: mustTime("2024-09-01T11:30:00Z"),
		},
	}
}
