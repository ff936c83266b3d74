package models

import "testing"

// TestMaterialTypeValid checks the material enum against known and
// unknown values.
func TestMaterialTypeValid(t *testing.T) {
	for _, m := range MaterialTypes {
		if !m.Valid() {
			t.Fatalf("expected %q to be valid", m)
		}
	}
	for _, m := range []MaterialType{"", "METAL", "plastic"} {
		if m.Valid() {
			t.Fatalf("expected %q to be invalid", m)
		}
	}
}

// TestUnitValid checks the unit enum.
func TestUnitValid(t *testing.T) {
	for _, u := range []Unit{UnitKG, UnitTonnes, UnitPieces, UnitLiters, UnitBags} {
		if !u.Valid() {
			t.Fatalf("expected %q to be valid", u)
		}
	}
	for _, u := range []Unit{"", "GRAMS", "kg"} {
		if u.Valid() {
			t.Fatalf("expected %q to be invalid", u)
		}
	}
}

// TestListingStatusValid ensures only the two lifecycle states exist.
func TestListingStatusValid(t *testing.T) {
	if !StatusAvailable.Valid() || !StatusCompleted.Valid() {
		t.Fatal("expected lifecycle states to be valid")
	}
	for _, s := range []ListingStatus{"", "PENDING", "available"} {
		if s.Valid() {
			t.Fatalf("expected %q to be invalid", s)
		}
	}
}

// TestUserTypeValid checks the user type enum.
func TestUserTypeValid(t *testing.T) {
	for _, u := range []UserType{UserIndividual, UserBusiness, UserRecycler, UserArtisan, UserManufacturer} {
		if !u.Valid() {
			t.Fatalf("expected %q to be valid", u)
		}
	}
	if UserType("ADMIN").Valid() {
		t.Fatal("expected ADMIN to be invalid")
	}
}

// TestUserPublicStripsCredentials ensures the public projection never
// carries the password hash.
func TestUserPublicStripsCredentials(t *testing.T) {
	phone := "+254700000000"
	user := User{
		Name:         "Wanjiku",
		Email:        "wanjiku@example.com",
		PasswordHash: "bcrypt-hash",
		UserType:     UserRecycler,
		Location:     "Nairobi",
		Phone:        &phone,
	}

	public := user.Public()
	if public.Name != user.Name || public.Email != user.Email || public.Location != user.Location {
		t.Fatalf("public projection lost fields: %+v", public)
	}
	if public.Phone == nil || *public.Phone != phone {
		t.Fatalf("expected phone to carry over, got %v", public.Phone)
	}
}
