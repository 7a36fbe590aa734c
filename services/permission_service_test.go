package services

import (
	"errors"
	"testing"

	"github.com/Internship-LDP/HRIS-LDP-sub001/models"
)

func TestCapabilityMatrix(t *testing.T) {
	ps := NewPermissionService(nil)

	superAdmin := &models.Account{Role: models.RoleSuperAdmin}
	admin := &models.Account{Role: models.RoleAdmin}
	staff := &models.Account{Role: models.RoleStaff, Division: "Finance"}
	pelamar := &models.Account{Role: models.RolePelamar}

	cases := []struct {
		name  string
		check func(*models.Account) (bool, error)
		allow []*models.Account
		deny  []*models.Account
	}{
		{"compose letter", ps.CanComposeLetter,
			[]*models.Account{superAdmin, admin, staff}, []*models.Account{pelamar}},
		{"disposition", ps.CanDisposition,
			[]*models.Account{superAdmin, admin}, []*models.Account{staff, pelamar}},
		{"manage accounts", ps.CanManageAccounts,
			[]*models.Account{superAdmin}, []*models.Account{admin, staff, pelamar}},
		{"manage recruitment", ps.CanManageRecruitment,
			[]*models.Account{superAdmin, admin}, []*models.Account{staff, pelamar}},
		{"apply", ps.CanApply,
			[]*models.Account{pelamar}, []*models.Account{superAdmin, admin, staff}},
		{"request termination", ps.CanRequestTermination,
			[]*models.Account{staff}, []*models.Account{superAdmin, admin, pelamar}},
		{"manage termination", ps.CanManageTermination,
			[]*models.Account{superAdmin, admin}, []*models.Account{staff, pelamar}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, a := range tc.allow {
				ok, err := tc.check(a)
				if err != nil || !ok {
					t.Fatalf("%s must be allowed (ok=%v err=%v)", a.Role, ok, err)
				}
			}
			for _, a := range tc.deny {
				ok, err := tc.check(a)
				if err != nil || ok {
					t.Fatalf("%s must be denied (ok=%v err=%v)", a.Role, ok, err)
				}
			}
			if _, err := tc.check(nil); !errors.Is(err, ErrUnauthorized) {
				t.Fatalf("nil account: err = %v, want ErrUnauthorized", err)
			}
		})
	}
}

func TestCanViewLetter(t *testing.T) {
	ps := NewPermissionService(nil)

	senderID := uint(9)
	letter := &models.Letter{DivisiTujuan: "Finance", SenderID: &senderID}

	admin := &models.Account{Role: models.RoleAdmin}
	if ok, err := ps.CanViewLetter(admin, letter); err != nil || !ok {
		t.Fatalf("admin HR must see every letter (ok=%v err=%v)", ok, err)
	}

	member := &models.Account{Role: models.RoleStaff, Division: "Finance"}
	if ok, _ := ps.CanViewLetter(member, letter); !ok {
		t.Fatal("target division member must see the letter")
	}

	sender := &models.Account{Role: models.RoleStaff, Division: "Marketing"}
	sender.ID = senderID
	if ok, _ := ps.CanViewLetter(sender, letter); !ok {
		t.Fatal("sender must see their own letter")
	}

	outsider := &models.Account{Role: models.RoleStaff, Division: "Marketing"}
	outsider.ID = 77
	if ok, _ := ps.CanViewLetter(outsider, letter); ok {
		t.Fatal("unrelated staff must not see the letter")
	}

	if _, err := ps.CanViewLetter(member, nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("nil letter: err = %v, want ErrNotFound", err)
	}
}
