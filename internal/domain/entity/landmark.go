package entity

// Landmark индекс ключевой точки тела в нумерации COCO
type Landmark int

const (
	Nose Landmark = iota
	LeftEye
	RightEye
	LeftEar
	RightEar
	LeftShoulder
	RightShoulder
	LeftElbow
	RightElbow
	LeftWrist
	RightWrist
	LeftHip
	RightHip
	LeftKnee
	RightKnee
	LeftAnkle
	RightAnkle

	NumLandmarks = 17
)

var landmarkNames = [NumLandmarks]string{
	"nose", "left_eye", "right_eye", "left_ear", "right_ear",
	"left_shoulder", "right_shoulder", "left_elbow", "right_elbow",
	"left_wrist", "right_wrist", "left_hip", "right_hip",
	"left_knee", "right_knee", "left_ankle", "right_ankle",
}

// String возвращает имя точки
func (l Landmark) String() string {
	if l < 0 || int(l) >= NumLandmarks {
		return "unknown"
	}
	return landmarkNames[l]
}

// Keypoint ключевая точка в относительных координатах [0, 1]
type Keypoint struct {
	Point Point2D `json:"point"`
	Score float32 `json:"score"` // уверенность модели
}

// LandmarkSet набор ключевых точек одного человека на одном кадре.
// Живёт только в пределах кадра.
type LandmarkSet struct {
	Keypoints [NumLandmarks]Keypoint `json:"keypoints"`
}

// At возвращает относительные координаты точки.
func (s *LandmarkSet) At(l Landmark) Point2D {
	return s.Keypoints[l].Point
}

// Set задаёт относительные координаты и уверенность точки.
func (s *LandmarkSet) Set(l Landmark, x, y float64, score float32) {
	s.Keypoints[l] = Keypoint{Point: Point2D{X: x, Y: y}, Score: score}
}

// Pixel переводит относительные координаты точки в пиксели кадра.
func (s *LandmarkSet) Pixel(l Landmark, width, height int) Point2D {
	p := s.Keypoints[l].Point
	return Point2D{X: p.X * float64(width), Y: p.Y * float64(height)}
}
