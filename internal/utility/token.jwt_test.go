package utility

import (
	"testing"
)

func TestCreateToken_ParseRoundtrip(t *testing.T) {
	secret := "test-secret"
	tokenMap, err := CreateToken(secret, "6761a2b3c4d5e6f708091a0b", "18c2f", "42")
	if err != nil {
		t.Fatalf("CreateToken trả về lỗi: %v", err)
	}
	signed, ok := tokenMap["token"]
	if !ok || signed == "" {
		t.Fatal("CreateToken phải trả về map có key 'token'")
	}

	claims, err := ParseToken(secret, signed)
	if err != nil {
		t.Fatalf("ParseToken trả về lỗi: %v", err)
	}
	if claims.UserID != "6761a2b3c4d5e6f708091a0b" {
		t.Errorf("UserID = %q, muốn %q", claims.UserID, "6761a2b3c4d5e6f708091a0b")
	}
	if claims.Time != "18c2f" || claims.RandomNumber != "42" {
		t.Errorf("Time/RandomNumber không khớp: %+v", claims)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	tokenMap, err := CreateToken("secret-a", "user1", "1", "1")
	if err != nil {
		t.Fatalf("CreateToken trả về lỗi: %v", err)
	}
	if _, err := ParseToken("secret-b", tokenMap["token"]); err == nil {
		t.Error("ParseToken với secret sai phải trả về lỗi")
	}
}

func TestCreateToken_KhacNhauGiuaCacLanLogin(t *testing.T) {
	a, _ := CreateToken("s", "user1", "1", "1")
	b, _ := CreateToken("s", "user1", "2", "2")
	if a["token"] == b["token"] {
		t.Error("token phải khác nhau khi time/randomNumber khác nhau")
	}
}
