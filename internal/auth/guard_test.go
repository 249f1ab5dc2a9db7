package auth

import (
	"testing"

	"github.com/EnesKotay/Fitness-App/internal/apperr"
)

func TestAuthorizeSelf(t *testing.T) {
	if err := AuthorizeSelf(7, 7); err != nil {
		t.Fatalf("expected self access to pass, got %v", err)
	}

	err := AuthorizeSelf(7, 8)
	if err == nil {
		t.Fatal("expected cross-account access to fail")
	}
	if apperr.KindOf(err) != apperr.Forbidden {
		t.Fatalf("expected forbidden kind, got %v", apperr.KindOf(err))
	}
	if err.Error() != "Sadece kendi kullanıcı bilginize erişebilirsiniz." {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestAuthorizeOwnership(t *testing.T) {
	if err := AuthorizeOwnership(7, 7, "Yemek kaydı bulunamadı veya yetkiniz yok!"); err != nil {
		t.Fatalf("expected owner access to pass, got %v", err)
	}

	err := AuthorizeOwnership(7, 8, "Yemek kaydı bulunamadı veya yetkiniz yok!")
	if err == nil {
		t.Fatal("expected foreign access to fail")
	}
	// Foreign resources are reported exactly like missing ones.
	if apperr.KindOf(err) != apperr.NotFound {
		t.Fatalf("expected not-found kind, got %v", apperr.KindOf(err))
	}
	if err.Error() != "Yemek kaydı bulunamadı veya yetkiniz yok!" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
