package policy

import "testing"

func TestDecide_PetCreate_ShelterOnly(t *testing.T) {
	shelter := Actor{UserID: "shelter-1", Role: RoleShelter}
	adopter := Actor{UserID: "adopter-1", Role: RoleAdopter}

	if err := Decide(shelter, ActionPetCreate, Target{}); err != nil {
		t.Fatalf("shelter should create pets, got %v", err)
	}
	if err := Decide(adopter, ActionPetCreate, Target{}); err != ErrForbidden {
		t.Fatalf("adopter create pet: expected ErrForbidden, got %v", err)
	}
}

func TestDecide_PetUpdateDelete_OwnerShelterOnly(t *testing.T) {
	owner := Actor{UserID: "shelter-1", Role: RoleShelter}
	otherShelter := Actor{UserID: "shelter-2", Role: RoleShelter}
	adopter := Actor{UserID: "shelter-1", Role: RoleAdopter} // mismo id, rol equivocado

	target := Target{OwnerUserID: "shelter-1"}

	for _, action := range []Action{ActionPetUpdate, ActionPetDelete} {
		if err := Decide(owner, action, target); err != nil {
			t.Fatalf("%s by owner shelter: got %v", action, err)
		}
		if err := Decide(otherShelter, action, target); err != ErrForbidden {
			t.Fatalf("%s by non-owner shelter: expected ErrForbidden, got %v", action, err)
		}
		if err := Decide(adopter, action, target); err != ErrForbidden {
			t.Fatalf("%s by adopter: expected ErrForbidden, got %v", action, err)
		}
	}
}

func TestDecide_ApplicationCreate_AdopterOnly(t *testing.T) {
	if err := Decide(Actor{UserID: "u1", Role: RoleAdopter}, ActionApplicationCreate, Target{}); err != nil {
		t.Fatalf("adopter create application: got %v", err)
	}
	if err := Decide(Actor{UserID: "u1", Role: RoleShelter}, ActionApplicationCreate, Target{}); err != ErrForbidden {
		t.Fatalf("shelter create application: expected ErrForbidden, got %v", err)
	}
}

func TestDecide_ApplicationsReadUser_SelfOrAnyShelter(t *testing.T) {
	target := Target{SubjectUserID: "adopter-1"}

	cases := []struct {
		name  string
		actor Actor
		want  error
	}{
		{"self", Actor{UserID: "adopter-1", Role: RoleAdopter}, nil},
		{"any shelter", Actor{UserID: "shelter-9", Role: RoleShelter}, nil},
		{"other adopter", Actor{UserID: "adopter-2", Role: RoleAdopter}, ErrForbidden},
	}

	for _, tc := range cases {
		if err := Decide(tc.actor, ActionApplicationsReadUser, target); err != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestDecide_Messages(t *testing.T) {
	target := Target{SenderID: "u-sender", ReceiverID: "u-receiver"}

	sender := Actor{UserID: "u-sender", Role: RoleAdopter}
	receiver := Actor{UserID: "u-receiver", Role: RoleShelter}
	stranger := Actor{UserID: "u-other", Role: RoleShelter}

	// create: solo el sender declarado
	if err := Decide(sender, ActionMessageCreate, target); err != nil {
		t.Fatalf("sender create: got %v", err)
	}
	if err := Decide(stranger, ActionMessageCreate, target); err != ErrForbidden {
		t.Fatalf("stranger create: expected ErrForbidden, got %v", err)
	}

	// read: cualquiera de los dos extremos
	for _, a := range []Actor{sender, receiver} {
		if err := Decide(a, ActionMessageRead, target); err != nil {
			t.Fatalf("read by %s: got %v", a.UserID, err)
		}
	}
	if err := Decide(stranger, ActionMessageRead, target); err != ErrForbidden {
		t.Fatalf("read by stranger: expected ErrForbidden, got %v", err)
	}

	// mark read: solo receiver, sin importar rol
	if err := Decide(receiver, ActionMessageMarkRead, target); err != nil {
		t.Fatalf("mark read by receiver: got %v", err)
	}
	if err := Decide(sender, ActionMessageMarkRead, target); err != ErrForbidden {
		t.Fatalf("mark read by sender: expected ErrForbidden, got %v", err)
	}
}

func TestDecide_MessagesReadUser_SelfOnly(t *testing.T) {
	target := Target{SubjectUserID: "u1"}

	if err := Decide(Actor{UserID: "u1", Role: RoleShelter}, ActionMessagesReadUser, target); err != nil {
		t.Fatalf("self read: got %v", err)
	}
	// shelter no tiene override para mensajes ajenos
	if err := Decide(Actor{UserID: "u2", Role: RoleShelter}, ActionMessagesReadUser, target); err != ErrForbidden {
		t.Fatalf("other shelter read: expected ErrForbidden, got %v", err)
	}
}

func TestDecide_UnknownAction_Denied(t *testing.T) {
	if err := Decide(Actor{UserID: "u1", Role: RoleShelter}, Action("pet:transmogrify"), Target{}); err != ErrForbidden {
		t.Fatalf("unknown action: expected ErrForbidden, got %v", err)
	}
}
