package mongo

import (
	"github.com/eduspeech/scorelit/internal/pkg/cmdapp"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// NameProvider resolves a student's display name from the profile table
type NameProvider struct {
	SessionProvider *SessionProvider
}

//NewNameProvider creates NameProvider instance
func NewNameProvider(sessionProvider *SessionProvider) (*NameProvider, error) {
	if sessionProvider == nil {
		return nil, errors.New("No session provider")
	}
	return &NameProvider{SessionProvider: sessionProvider}, nil
}

// Get returns the student name for userID, falling back to a derived
// name when there is no profile
func (np *NameProvider) Get(userID string) (string, error) {
	client, err := np.SessionProvider.NewClient()
	if err != nil {
		return "", err
	}
	ctx, cancel := mongoContext()
	defer cancel()
	c := client.Database(store).Collection(profileTable)
	var profile struct {
		Name string `bson:"name"`
	}
	err = c.FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile)
	if err == mongo.ErrNoDocuments || (err == nil && profile.Name == "") {
		cmdapp.Log.Warnf("No profile for %s", userID)
		return fallbackName(userID), nil
	}
	if err != nil {
		return "", errors.Wrap(err, "Can't get profile")
	}
	return profile.Name, nil
}

func fallbackName(userID string) string {
	if len(userID) > 8 {
		userID = userID[:8]
	}
	return "student_" + userID
}
