package repository

import (
	"context"
	"strings"
	"testing"

	"github.com/genx-realty/console/api/internal/database"
	"github.com/genx-realty/console/api/internal/models"
)

func cleanupProperty(t *testing.T, db *database.Database, id string) {
	t.Helper()
	_, err := db.Pool.Exec(context.Background(), "DELETE FROM properties WHERE id = $1", id)
	if err != nil {
		t.Errorf("Failed to clean up property %s: %v", id, err)
	}
}

func TestGeneratePropertyID_Format(t *testing.T) {
	db := setupTestDatabase(t)
	defer db.Close()

	repo := NewPropertyRepository(db)
	ctx := context.Background()

	id, err := repo.GeneratePropertyID(ctx, "Apartment")
	if err != nil {
		t.Fatalf("GeneratePropertyID returned error: %v", err)
	}

	if !strings.HasPrefix(id, "APA-") {
		t.Errorf("Expected APA- prefix for Apartment, got %s", id)
	}
	parts := strings.SplitN(id, "-", 2)
	if len(parts) != 2 || len(parts[1]) != 6 {
		t.Errorf("Expected six-digit sequence suffix, got %s", id)
	}

	// Consecutive calls never repeat a code.
	next, err := repo.GeneratePropertyID(ctx, "Apartment")
	if err != nil {
		t.Fatalf("GeneratePropertyID returned error: %v", err)
	}
	if next == id {
		t.Errorf("Expected distinct codes, got %s twice", id)
	}
}

func TestGeneratePropertyID_FallbackPrefix(t *testing.T) {
	db := setupTestDatabase(t)
	defer db.Close()

	repo := NewPropertyRepository(db)
	ctx := context.Background()

	// A type with no usable letters falls back to the generic prefix.
	id, err := repo.GeneratePropertyID(ctx, "123")
	if err != nil {
		t.Fatalf("GeneratePropertyID returned error: %v", err)
	}
	if !strings.HasPrefix(id, "PRP-") {
		t.Errorf("Expected PRP- fallback prefix, got %s", id)
	}
}

func TestPropertyInsertAndFind(t *testing.T) {
	db := setupTestDatabase(t)
	defer db.Close()

	repo := NewPropertyRepository(db)
	ctx := context.Background()

	propertyID, err := repo.GeneratePropertyID(ctx, "Villa")
	if err != nil {
		t.Fatalf("GeneratePropertyID returned error: %v", err)
	}

	propertyType := "Villa"
	size := 240.5
	bedrooms := 4
	price := 12000000000.0

	stored, err := repo.Insert(ctx, &models.Property{
		PropertyID:    propertyID,
		PropertyTitle: "Integration test villa",
		PropertyType:  &propertyType,
		SizeSqm:       &size,
		Bedrooms:      &bedrooms,
		PriceVND:      &price,
		Amenities:     []string{"Pool", "Garden"},
	})
	if err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	defer cleanupProperty(t, db, stored.ID)

	if stored.ID == "" {
		t.Error("Expected stored row to carry an identity")
	}
	if stored.CreatedAt.IsZero() {
		t.Error("Expected stored row to carry a creation time")
	}

	found, err := repo.FindByID(ctx, stored.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if found == nil {
		t.Fatal("Expected inserted property to be found")
	}
	if found.PropertyID != propertyID {
		t.Errorf("Expected property ID %s, got %s", propertyID, found.PropertyID)
	}
	if found.SizeSqm == nil || *found.SizeSqm != size {
		t.Errorf("Expected size %v, got %v", size, found.SizeSqm)
	}
	if found.Bedrooms == nil || *found.Bedrooms != bedrooms {
		t.Errorf("Expected bedrooms %d, got %v", bedrooms, found.Bedrooms)
	}
	if len(found.Amenities) != 2 {
		t.Errorf("Expected 2 amenities, got %v", found.Amenities)
	}
	// Absent fields stay NULL, not zero.
	if found.Bathrooms != nil {
		t.Errorf("Expected nil bathrooms, got %v", *found.Bathrooms)
	}
}

func TestPropertyFindByID_Missing(t *testing.T) {
	db := setupTestDatabase(t)
	defer db.Close()

	repo := NewPropertyRepository(db)

	found, err := repo.FindByID(context.Background(), "00000000-0000-0000-0000-000000000000")
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if found != nil {
		t.Errorf("Expected nil for unknown identity, got %+v", found)
	}
}

func TestPropertyListAll_NewestFirst(t *testing.T) {
	db := setupTestDatabase(t)
	defer db.Close()

	repo := NewPropertyRepository(db)
	ctx := context.Background()

	olderID, err := repo.GeneratePropertyID(ctx, "Apartment")
	if err != nil {
		t.Fatalf("GeneratePropertyID returned error: %v", err)
	}
	older, err := repo.Insert(ctx, &models.Property{
		PropertyID:    olderID,
		PropertyTitle: "Integration test older",
	})
	if err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	defer cleanupProperty(t, db, older.ID)

	newerID, err := repo.GeneratePropertyID(ctx, "Apartment")
	if err != nil {
		t.Fatalf("GeneratePropertyID returned error: %v", err)
	}
	newer, err := repo.Insert(ctx, &models.Property{
		PropertyID:    newerID,
		PropertyTitle: "Integration test newer",
	})
	if err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	defer cleanupProperty(t, db, newer.ID)

	properties, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}

	newerIdx, olderIdx := -1, -1
	for i := range properties {
		switch properties[i].ID {
		case newer.ID:
			newerIdx = i
		case older.ID:
			olderIdx = i
		}
	}
	if newerIdx == -1 || olderIdx == -1 {
		t.Fatal("Expected both inserted properties in the listing")
	}
	if newerIdx > olderIdx {
		t.Errorf("Expected newest first: newer at %d, older at %d", newerIdx, olderIdx)
	}
}
