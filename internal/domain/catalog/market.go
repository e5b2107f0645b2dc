package catalog

// MarketTier is one price band of a benchmark service.
type MarketTier struct {
	Label      string  `json:"label"`
	PriceMin   float64 `json:"price_min"`
	PriceMax   float64 `json:"price_max"`
	SLADays    int     `json:"sla_days"`
	Desc       string  `json:"desc"`
}

// MarketService is a benchmarkable deliverable with three market tiers.
// BaseUnitAmount is the reference volume the tier prices assume (e.g. 30
// seconds of video, a pack of 10 images).
type MarketService struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Category       string     `json:"category"`
	BaseUnitAmount float64    `json:"base_unit_amount"`
	UnitLabel      string     `json:"unit_label"`
	Tier1          MarketTier `json:"tier_1"`
	Tier2          MarketTier `json:"tier_2"`
	Tier3          MarketTier `json:"tier_3"`
}

// MarketRates carries the benchmark table metadata.
type MarketRates struct {
	Currency         string          `json:"currency"`
	LastUpdated      string          `json:"last_updated"`
	MinEngagementFee float64         `json:"min_engagement_fee"`
	Services         []MarketService `json:"services"`
}

// Rates returns the static market benchmark table (RUB, synced 2025-02-15).
func Rates() MarketRates {
	return marketRates
}

var marketRates = MarketRates{
	Currency:         "RUB",
	LastUpdated:      "2025-02-15",
	MinEngagementFee: 15000,
	Services: []MarketService{
		{
			ID: "svc_video_promo", Name: "AI Promo Video (30s)", Category: "Video Gen",
			BaseUnitAmount: 30, UnitLabel: "sec",
			Tier1: MarketTier{Label: "Freelance / Dumping", PriceMin: 5000, PriceMax: 15000, SLADays: 7, Desc: "Entry level, stock assets, simple cuts."},
			Tier2: MarketTier{Label: "Pro Studio Standard", PriceMin: 45000, PriceMax: 80000, SLADays: 5, Desc: "Consistent style (LoRA), lipsync, sound design, post-production."},
			Tier3: MarketTier{Label: "Creative Agency", PriceMin: 150000, PriceMax: 400000, SLADays: 14, Desc: "Creative director, scriptwriter, custom sound, 3-5 revision rounds, usage rights."},
		},
		{
			ID: "svc_avatar_shorts", Name: "Avatar Reels / Shorts (60s)", Category: "Video Gen",
			BaseUnitAmount: 60, UnitLabel: "sec",
			Tier1: MarketTier{Label: "HeyGen Only", PriceMin: 2000, PriceMax: 5000, SLADays: 2, Desc: "Raw HeyGen/Synthesia generation, talking head, no editing."},
			Tier2: MarketTier{Label: "Pro Content", PriceMin: 10000, PriceMax: 25000, SLADays: 3, Desc: "Dynamic editing, subtitles, B-roll inserts, retention cuts."},
			Tier3: MarketTier{Label: "Top Production", PriceMin: 50000, PriceMax: 100000, SLADays: 7, Desc: "Fine-tuned avatar, professional voiceover, scripted series of 5-10 clips."},
		},
		{
			ID: "svc_image_pack", Name: "Image Pack (10 pcs)", Category: "Image Gen",
			BaseUnitAmount: 10, UnitLabel: "pcs",
			Tier1: MarketTier{Label: "MidJourney Raw", PriceMin: 1000, PriceMax: 3000, SLADays: 1, Desc: "Raw generations, no upscale or retouch."},
			Tier2: MarketTier{Label: "Art Direction", PriceMin: 10000, PriceMax: 25000, SLADays: 3, Desc: "Unified style, composition control, upscale, artifact retouch."},
			Tier3: MarketTier{Label: "Commercial License", PriceMin: 50000, PriceMax: 120000, SLADays: 7, Desc: "Vectorization, print preparation, full rights transfer."},
		},
		{
			ID: "svc_music_track", Name: "AI Soundtrack (2 min)", Category: "Audio Gen",
			BaseUnitAmount: 1, UnitLabel: "track",
			Tier1: MarketTier{Label: "Suno/Udio Raw", PriceMin: 500, PriceMax: 1500, SLADays: 1, Desc: "Raw generation, possible artifacts, no mixing."},
			Tier2: MarketTier{Label: "Mixed & Mastered", PriceMin: 5000, PriceMax: 15000, SLADays: 3, Desc: "Best-take comping, mastering, stems, noise cleanup."},
			Tier3: MarketTier{Label: "Commercial Jingle", PriceMin: 30000, PriceMax: 80000, SLADays: 5, Desc: "Brand lyrics, vocal conversion, full rights clearance."},
		},
	},
}
