package entity

import "image/color"

// PostureStatus итог классификации осанки
type PostureStatus string

const (
	PostureGood PostureStatus = "good"
	PostureBad  PostureStatus = "bad"
)

// Границы допустимых углов, интервалы открытые.
const (
	HeadAngleMin = 88.0
	HeadAngleMax = 94.0
	LegAngleMin  = 87.0
	LegAngleMax  = 93.0
)

// DefaultHeadTopOffset смещение макушки над носом в долях высоты кадра.
// Это приближение: модель макушку не детектирует.
const DefaultHeadTopOffset = 0.1

var (
	colorGood = color.RGBA{G: 255, A: 255}
	colorBad  = color.RGBA{R: 255, A: 255}
)

// Label возвращает подпись для экрана
func (s PostureStatus) Label() string {
	if s == PostureGood {
		return "Good Posture"
	}
	return "Bad Posture"
}

// Color возвращает цвет подписи статуса
func (s PostureStatus) Color() color.RGBA {
	if s == PostureGood {
		return colorGood
	}
	return colorBad
}

// PostureAngles углы, вычисленные по одному кадру
type PostureAngles struct {
	Head float64 `json:"head"`
	Leg  float64 `json:"leg"`
}

// Status сопоставляет углы с порогами. Неопределённый угол даёт PostureBad.
func (a PostureAngles) Status() PostureStatus {
	headOK := a.Head > HeadAngleMin && a.Head < HeadAngleMax
	legOK := a.Leg > LegAngleMin && a.Leg < LegAngleMax
	if headOK && legOK {
		return PostureGood
	}
	return PostureBad
}

// PostureGeometry пиксельные точки, по которым считались углы.
type PostureGeometry struct {
	ShoulderLeft Point2D `json:"shoulder_left"`
	ShoulderMid  Point2D `json:"shoulder_mid"`
	HeadTop      Point2D `json:"head_top"`
	HipLeft      Point2D `json:"hip_left"`
	HipRight     Point2D `json:"hip_right"`
	HipMid       Point2D `json:"hip_mid"`
	AnkleLeft    Point2D `json:"ankle_left"`
	AnkleRight   Point2D `json:"ankle_right"`
}

// Assessment результат оценки осанки на одном кадре
type Assessment struct {
	Status    PostureStatus   `json:"status"`
	Angles    PostureAngles   `json:"angles"`
	Geometry  PostureGeometry `json:"geometry"`
	Landmarks *LandmarkSet    `json:"-"`
	Width     int             `json:"width"`
	Height    int             `json:"height"`
}
