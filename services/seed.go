package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"abi-fashion-backend/models"
)

// SeedService inserts first-run demo data. Each seed is a no-op when the
// collection already has rows.
type SeedService struct {
	works      *mongo.Collection
	categories *mongo.Collection
}

func NewSeedService(db *mongo.Database) *SeedService {
	return &SeedService{
		works:      db.Collection("works"),
		categories: db.Collection("categories"),
	}
}

func strPtr(s string) *string { return &s }

// SeedCategories inserts the default category set if none exist.
// Returns false when the collection was already seeded.
func (s *SeedService) SeedCategories(ctx context.Context) (bool, error) {
	count, err := s.categories.CountDocuments(ctx, bson.M{})
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	now := time.Now()
	defaults := []interface{}{
		models.Category{Name: "Blouse", NameTA: strPtr("ஜாக்கெட்"), DisplayOrder: 1, IsActive: true, CreatedAt: now},
		models.Category{Name: "Salwar", NameTA: strPtr("சல்வார்"), DisplayOrder: 2, IsActive: true, CreatedAt: now},
		models.Category{Name: "Frock", NameTA: strPtr("ஃபிராக்"), DisplayOrder: 3, IsActive: true, CreatedAt: now},
		models.Category{Name: "Kids", NameTA: strPtr("குழந்தைகள்"), DisplayOrder: 4, IsActive: true, CreatedAt: now},
	}

	if _, err := s.categories.InsertMany(ctx, defaults); err != nil {
		return false, err
	}
	return true, nil
}

// SeedWorks inserts a handful of sample portfolio pieces if none exist.
func (s *SeedService) SeedWorks(ctx context.Context) (bool, error) {
	count, err := s.works.CountDocuments(ctx, bson.M{})
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	now := time.Now()
	samples := []interface{}{
		models.Work{
			Category:      "Bridal",
			TitleEN:       "Royal Emerald Aari Blouse",
			TitleTA:       "அரச மரகத ஆரி ஜாக்கெட்",
			DescriptionEN: "Intricate gold Aari hand embroidery on premium emerald silk, perfect for grand weddings.",
			DescriptionTA: "முன்னணி திருமணங்களுக்காக பிரீமியம் மரகத பட்டில் நுணுக்கமான தங்க ஆரி கை தையல்.",
			Images:        []string{"https://images.unsplash.com/photo-1617627143750-d86bc21e42bb?q=80&w=1000&auto=format&fit=crop"},
			IsActive:      true,
			CreatedAt:     now,
		},
		models.Work{
			Category:      "Aari Embroidery",
			TitleEN:       "Golden Floral Pattern",
			TitleTA:       "தங்க மலர் வேலைப்பாடு",
			DescriptionEN: "Detailed floral embroidery featuring zardosi and bead work on pink raw silk.",
			DescriptionTA: "இளஞ்சிவப்பு பட்டில் சர்தோசி மற்றும் மணி வேலைப்பாடுகளுடன் கூடிய விரிவான மலர் தையல்.",
			Images:        []string{"https://images.unsplash.com/photo-1590736963921-51034c641437?q=80&w=1000&auto=format&fit=crop"},
			IsActive:      true,
			CreatedAt:     now.Add(-24 * time.Hour),
		},
		models.Work{
			Category:      "Designer Blouse",
			TitleEN:       "Velvet Elegance",
			TitleTA:       "வெல்வெட் நேர்த்தி",
			DescriptionEN: "Modern velvet blouse with stone work and contemporary silhouette.",
			DescriptionTA: "கல் வேலைப்பாடு மற்றும் நவீன வடிவமைப்புடன் கூடிய நவீன வெல்வெட் ஜாக்கெட்.",
			Images:        []string{"https://images.unsplash.com/photo-1583391733956-3750e0ff4e8b?q=80&w=1000&auto=format&fit=crop"},
			IsActive:      true,
			CreatedAt:     now.Add(-48 * time.Hour),
		},
	}

	if _, err := s.works.InsertMany(ctx, samples); err != nil {
		return false, err
	}
	return true, nil
}
