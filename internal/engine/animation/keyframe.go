package animation

import (
	"errors"
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	smath "github.com/Faultbox/sannhet/pkg/math"
)

var (
	// ErrNoKeyFrames is returned for clips without keyframes.
	ErrNoKeyFrames = errors.New("animation: clip has no keyframes")
	// ErrBadLength is returned for clips with a non-positive length or
	// keyframes past the end of the clip.
	ErrBadLength = errors.New("animation: invalid clip length")
)

// JointTransform is a joint's pose relative to its parent.
type JointTransform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// Local returns translate(Position) * rotate(Rotation).
func (t JointTransform) Local() mgl32.Mat4 {
	return mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).Mul4(t.Rotation.Mat4())
}

// Interpolate blends a towards b by progress in [0, 1]: linear for the
// translation, spherical for the rotation.
func Interpolate(a, b JointTransform, progress float32) JointTransform {
	return JointTransform{
		Position: a.Position.Add(b.Position.Sub(a.Position).Mul(progress)),
		Rotation: mgl32.QuatSlerp(a.Rotation, b.Rotation, progress),
	}
}

// KeyFrame is the pose of every animated joint, by name, at TimeStamp seconds.
type KeyFrame struct {
	TimeStamp float32
	Pose      map[string]JointTransform
}

// Animation is a looping clip.
type Animation struct {
	Name      string
	Length    float32
	KeyFrames []KeyFrame
}

// NewAnimation validates a clip and sorts its keyframes by time.
func NewAnimation(name string, length float32, frames []KeyFrame) (*Animation, error) {
	if len(frames) == 0 {
		return nil, ErrNoKeyFrames
	}
	if length <= 0 {
		return nil, ErrBadLength
	}
	sorted := append([]KeyFrame(nil), frames...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TimeStamp < sorted[j].TimeStamp
	})
	if sorted[0].TimeStamp < 0 || sorted[len(sorted)-1].TimeStamp > length {
		return nil, ErrBadLength
	}
	return &Animation{Name: name, Length: length, KeyFrames: sorted}, nil
}

// Pose samples the clip at time t in [0, Length). Outside the keyframed
// range the pose blends from the last keyframe round to the first, so the
// loop is seamless.
func (a *Animation) Pose(t float32) map[string]JointTransform {
	frames := a.KeyFrames
	first, last := frames[0], frames[len(frames)-1]

	var prev, next KeyFrame
	var prevTime, nextTime float32
	switch {
	case t < first.TimeStamp:
		prev, prevTime = last, last.TimeStamp-a.Length
		next, nextTime = first, first.TimeStamp
	case t >= last.TimeStamp:
		prev, prevTime = last, last.TimeStamp
		next, nextTime = first, a.Length+first.TimeStamp
	default:
		for i := 1; i < len(frames); i++ {
			if frames[i].TimeStamp > t {
				prev, prevTime = frames[i-1], frames[i-1].TimeStamp
				next, nextTime = frames[i], frames[i].TimeStamp
				break
			}
		}
	}

	var progress float32
	if span := nextTime - prevTime; span > 0 {
		progress = (t - prevTime) / span
	}
	progress = smath.Clampf(progress, 0, 1)

	pose := make(map[string]JointTransform, len(prev.Pose))
	for name, from := range prev.Pose {
		to, ok := next.Pose[name]
		if !ok {
			to = from
		}
		pose[name] = Interpolate(from, to, progress)
	}
	return pose
}
