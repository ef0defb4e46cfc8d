package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/telosnetwork/telos-profiles/pkg/types"
)

func TestAnnotationWriteCommand_UpsertSemantics(t *testing.T) {
	profiles := newFakeProfileRepo()
	profiles.add("bob")
	annotations := newFakeAnnotationRepo()
	cmd := NewAnnotationWriteCommand(AnnotationCommandConfig{
		Repository: annotations,
		Profiles:   profiles,
	})
	ctx := context.Background()

	require.NoError(t, cmd.Execute(ctx, AnnotationWriteInput{
		Writer: "carol", Subject: "bob", Payload: "trusted peer", Actor: actor("carol"),
	}))
	require.NoError(t, cmd.Execute(ctx, AnnotationWriteInput{
		Writer: "carol", Subject: "bob", Payload: "revised note", Actor: actor("carol"),
	}))

	rows, err := annotations.ListAnnotations(ctx, "carol")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "revised note", rows[0].Payload)
}

func TestAnnotationWriteCommand_SubjectMustHaveProfile(t *testing.T) {
	cmd := NewAnnotationWriteCommand(AnnotationCommandConfig{
		Repository: newFakeAnnotationRepo(),
		Profiles:   newFakeProfileRepo(),
	})

	err := cmd.Execute(context.Background(), AnnotationWriteInput{
		Writer: "carol", Subject: "ghost", Payload: "note", Actor: actor("carol"),
	})
	require.Error(t, err)
	require.True(t, types.HasTextCode(err, types.TextCodeProfileNotFound))
}

func TestAnnotationWriteCommand_WriterAuthority(t *testing.T) {
	profiles := newFakeProfileRepo()
	profiles.add("bob")
	cmd := NewAnnotationWriteCommand(AnnotationCommandConfig{
		Repository: newFakeAnnotationRepo(),
		Profiles:   profiles,
	})

	err := cmd.Execute(context.Background(), AnnotationWriteInput{
		Writer: "carol", Subject: "bob", Payload: "note", Actor: actor("mallory"),
	})
	require.Error(t, err)
	require.True(t, types.IsAuthorizationFailure(err))
}

func TestAnnotationDeleteCommand(t *testing.T) {
	annotations := newFakeAnnotationRepo()
	_, err := annotations.UpsertAnnotation(context.Background(), types.Annotation{
		Writer: "carol", Subject: "bob", Payload: "note",
	})
	require.NoError(t, err)

	cmd := NewAnnotationDeleteCommand(AnnotationCommandConfig{Repository: annotations})

	require.NoError(t, cmd.Execute(context.Background(), AnnotationDeleteInput{
		Writer: "carol", Subject: "bob", Actor: actor("carol"),
	}))
	require.Empty(t, annotations.records)

	err = cmd.Execute(context.Background(), AnnotationDeleteInput{
		Writer: "carol", Subject: "bob", Actor: actor("carol"),
	})
	require.Error(t, err)
	require.True(t, types.HasTextCode(err, types.TextCodeAnnotationNotFound))
}
