package mongo

import (
	"github.com/eduspeech/scorelit/internal/app/scoring/api"
	"github.com/eduspeech/scorelit/internal/pkg/cmdapp"
	"github.com/pkg/errors"
)

// ResultSaver saves scored responses to mongo db
type ResultSaver struct {
	SessionProvider *SessionProvider
}

//NewResultSaver creates ResultSaver instance
func NewResultSaver(sessionProvider *SessionProvider) (*ResultSaver, error) {
	if sessionProvider == nil {
		return nil, errors.New("No session provider")
	}
	return &ResultSaver{SessionProvider: sessionProvider}, nil
}

// Save inserts one scored result
func (fs *ResultSaver) Save(result *api.Result) error {
	cmdapp.Log.Infof("Saving result for %s/%s", result.UserID, result.TestType)

	client, err := fs.SessionProvider.NewClient()
	if err != nil {
		return err
	}
	ctx, cancel := mongoContext()
	defer cancel()
	c := client.Database(store).Collection(resultTable)
	_, err = c.InsertOne(ctx, result)
	return errors.Wrap(err, "Can't save result")
}
