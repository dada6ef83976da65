package tray

// EventKind 托盘事件类型
type EventKind int

const (
	EventClick EventKind = iota
	EventDoubleClick
	EventEnter
	EventMove
	EventLeave
)

func (k EventKind) String() string {
	switch k {
	case EventClick:
		return "click"
	case EventDoubleClick:
		return "double_click"
	case EventEnter:
		return "enter"
	case EventMove:
		return "move"
	case EventLeave:
		return "leave"
	default:
		return "unknown"
	}
}

// MouseButton 鼠标按键
type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonRight
	ButtonMiddle
)

// ButtonState 按键状态
type ButtonState int

const (
	StateUp ButtonState = iota
	StateDown
)

// Rect 托盘图标在屏幕上的位置（屏幕坐标）
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty 是否没有有效尺寸
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Center 中心点
func (r Rect) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Event 托盘图标输入事件
// Rect 只有在平台后端能提供图标位置时才非空
type Event struct {
	ID     string
	Kind   EventKind
	Button MouseButton
	State  ButtonState
	Rect   Rect
}

// IsPrimaryClick 是否为主键单击且已释放
func (e Event) IsPrimaryClick() bool {
	return e.Kind == EventClick && e.Button == ButtonLeft && e.State == StateUp
}
