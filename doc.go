// Package primer is an animation-authoring toolkit built on a small 3D scene
// graph. A caller declares what a subtree should look like now and gets the
// diff against the previous frame, plus a composable tween that animates
// between the two states.
//
// # Scene graph
//
// Every element is a [Node] owned by a [Scene]. Nodes are addressed by
// stable [NodeID] handles; a node's parent is a handle lookup, never an
// owning pointer. Each node carries a local position, rotation and scale
// (see [Transform]) built on [mathgl].
//
//	scene := primer.NewScene()
//	group := scene.NewNode("group", primer.NodeKindGroup)
//	scene.Root().AddChild(group)
//
// # Reconciliation
//
// A [Container] reconciles a declared list of children against the nodes
// that already exist under a scope node:
//
//	c := primer.NewContainer(group)
//	a := c.Add("A")
//	b := c.Add("B")
//	removed := c.Purge(true) // nodes not requested this cycle
//
// # Tweens
//
// A [Tween] maps normalized time to a side effect. Atomic tweens come from
// [Value], [MoveTo], [ScaleTo], [RotateTo] and [FadeTo]; they compose with
// [Parallel], [Sequential] and [SequentialWithDelay] and take lifecycle hooks
// through [Tween.Observe]. Easing curves adapt [gween] and [harmonica].
//
//	tw := primer.Parallel(
//		primer.MoveTo(a, primer.Vec3{1, 0, 0}),
//		primer.FadeTo(b, 0),
//	)
//	director := primer.NewDirector()
//	director.Play(tw)
//	director.Update(1.0 / 60) // once per frame
//
// # Group transitions
//
// [Classify] pairs the groups of two [TransitionState] values and tags each
// pair as lerped, replaced, removed or added. [ExpressionScrubbable] uses it
// to morph one rendered [Expression] into another.
//
// The root package never renders. The ebitenplayer package drives a
// [Director] from an Ebitengine game loop and draws a debug view, and the
// ecs sub-module forwards node lifecycle events to [Donburi].
//
// [mathgl]: https://github.com/go-gl/mathgl
// [gween]: https://github.com/tanema/gween
// [harmonica]: https://github.com/charmbracelet/harmonica
// [Donburi]: https://github.com/yohamta/donburi
package primer
